package variant

import "github.com/wadoon/hf3lint/pkg/lint/rules"

const bcRoot = bcMarker + "."

// BCPointSets lists the optional blocks of a boundary condition file.
var BCPointSets = []rules.PointSet{
	{
		Root:   bcRoot + "FixedConstraintsBCs",
		Count:  "NumberOfFixedDirichletPoints",
		Points: "fDPoints",
		Values: "fDisplacements",
	},
	{
		Root:   bcRoot + "DisplacementConstraintsBCs",
		Count:  "NumberOfDisplacedDirichletPoints",
		Points: "dDPoints",
		Values: "dDisplacements",
	},
	{
		Root:   bcRoot + "ForceOrPressureBCs",
		Count:  "NumberOfForceOrPressureBCPoints",
		Points: "ForceOrPressureBCPoints",
		Values: "ForcesOrPressure",
	},
}
