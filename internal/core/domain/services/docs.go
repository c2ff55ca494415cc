// Package services contains stateless domain services that operate across
// aggregates: currently the pricing calculator that turns a garment
// configuration and design specification into a monetary total.
package services
