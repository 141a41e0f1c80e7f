package rules

import "github.com/wadoon/hf3lint/pkg/lint/validator"

var (
	_ validator.Rule = (*SchemaRule)(nil)
	_ validator.Rule = (*PointSetRule)(nil)
	_ validator.Rule = ElasticityRule{}
)
