// Package rules holds the validation procedures run by the validator.
//
// SchemaRule checks every leaf of a schema.Schema. PointSetRule checks the
// count/points/values triples of boundary-condition blocks. ElasticityRule
// warns about suspicious material parameters.
package rules
