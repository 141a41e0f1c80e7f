package variant

import (
	"github.com/wadoon/hf3lint/pkg/lint/checker"
	"github.com/wadoon/hf3lint/pkg/lint/schema"
)

// HF3Schema returns the field catalog of an hf3 parameter file. Mesh file
// references are checked against fsys.
func HF3Schema(fsys checker.FileSystem) schema.Schema {
	var (
		str     = schema.Is(checker.IsString)
		natural = schema.Is(checker.NaturalNumber)
		float   = schema.Is(checker.Float)
		file    = schema.Is(checker.FileExists(fsys))
	)
	preconditioners := []string{
		"SGAUSS_SEIDEL", "NOPRECOND", "JACOBI", "GAUSS_SEIDEL",
		"SOR", "SSOR", "ILU", "ILU2", "ILU_P", "ILUpp",
	}
	oneOf := func(allowed ...string) schema.Node {
		return schema.Is(checker.OneOf(allowed...))
	}

	return schema.Schema{
		"Param": schema.Nested{
			"OutputPathAndPrefix": str,

			"Mesh": schema.Nested{
				"Filename":        file,
				"BCdataFilename":  file,
				"InitialRefLevel": natural,
			},

			"LinearAlgebra": schema.Nested{
				"Platform":       oneOf("CPU", "GPU", "OPENCL"),
				"Implementation": oneOf("Naive", "BLAS", "OPENMP", "MKL"),
				"MatrixFormat":   oneOf("NAIVE", "BLAS", "COO", "ELL", "CSR"),
			},

			"ElasticityModel": schema.Nested{
				"density": float,
				"lambda":  natural,
				"mu":      natural,
				"gravity": float,
			},

			"QuadratureOrder": schema.Literal("2"),

			"FiniteElements": schema.Nested{
				"DisplacementDegree": schema.Literal("1"),
			},

			"Instationary": schema.Nested{
				"SolveInstationary": oneOf("1", "2"),
				"DampingFactor":     schema.Literal("1.0"),
				"RayleighAlpha":     float,
				"RayleighBeta":      float,
				"Method":            oneOf("ImplicitEuler", "CrankNicolson", "ExplicitEuler", "Newmark"),
				"DeltaT":            float,
				"MaxTimeStepIts":    natural,
			},

			"Boundary": schema.Nested{
				"DirichletMaterial1":       natural,
				"DirichletMaterial2":       natural,
				"DirichletMaterial3":       natural,
				"NeumannMaterial1":         natural,
				"NeumannMaterial1Pressure": float,
				"NeumannMaterial2":         natural,
				"NeumannMaterial2Pressure": float,
			},

			"LinearSolver": schema.Nested{
				"SolverName":         oneOf("CG", "GMRES"),
				"MaximumIterations":  natural,
				"AbsoluteTolerance":  float,
				"RelativeTolerance":  float,
				"DivergenceLimit":    float,
				"BasisSize":          natural,
				"Preconditioning":    oneOf("0", "1"),
				"PreconditionerName": oneOf(preconditioners...),
				"Omega":              float,
				"ILU_p":              float,
			},

			"ILUPP": schema.Nested{
				"PreprocessingType":    schema.Literal("0"),
				"PreconditionerNumber": schema.Literal("11"),
				"MaxMultilevels":       schema.Literal("20"),
				"MemFactor":            schema.Literal("0.8"),
				"PivotThreshold":       schema.Literal("2.75"),
				"MinPivot":             schema.Literal("0.05"),
			},
		},
	}
}
