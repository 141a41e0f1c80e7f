package rules

import (
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"

	"github.com/wadoon/hf3lint/pkg/lint/document"
	"github.com/wadoon/hf3lint/pkg/lint/validator"
)

// Elasticity parameter locations.
const (
	ElasticityModelPath = "Param.ElasticityModel"
	MuPath              = ElasticityModelPath + ".mu"
	LambdaPath          = ElasticityModelPath + ".lambda"
)

type elasticityParams struct {
	Mu     *float64 `mapstructure:"mu"`
	Lambda *float64 `mapstructure:"lambda"`
}

// ElasticityRule warns when mu exceeds half of lambda.
type ElasticityRule struct{}

// NewElasticityRule returns the Lamé parameter rule.
func NewElasticityRule() ElasticityRule { return ElasticityRule{} }

// Name returns the rule name.
func (ElasticityRule) Name() string { return "lambda_mu" }

// Apply records a Warning at the mu path when mu > lambda/2. Missing or
// non-numeric parameters are left to the schema rule.
func (ElasticityRule) Apply(doc document.Document, rec *validator.Recorder) {
	model, ok := doc.GetDocument(ElasticityModelPath)
	if !ok {
		return
	}
	for _, key := range []string{"mu", "lambda"} {
		if s, ok := model.GetString(key); ok && s == "" {
			return
		}
	}

	var params elasticityParams
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		MatchName:        func(mapKey, fieldName string) bool { return mapKey == fieldName },
		Result:           &params,
	})
	if err != nil {
		return
	}
	if err := dec.Decode(map[string]any(model)); err != nil {
		return
	}
	if params.Mu == nil || params.Lambda == nil || !finite(*params.Mu) || !finite(*params.Lambda) {
		return
	}

	rec.Warning(*params.Mu <= 0.5*(*params.Lambda),
		fmt.Sprintf("%s should be at most half of %s", MuPath, LambdaPath),
		MuPath)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
