package config

// ProgramFile represents the structure of a *.bam.yaml program description.
type ProgramFile struct {
	Version   string              `yaml:"version"`
	Name      string              `yaml:"name"`
	Entry     string              `yaml:"entry"`
	Edges     []EdgeDTO           `yaml:"edges"`
	Blocks    map[string]BlockDTO `yaml:"blocks"`
	Targets   []string            `yaml:"targets"`
	Initial   map[string]string   `yaml:"initial"`
	Precision []string            `yaml:"precision"`
	Analysis  AnalysisDTO         `yaml:"analysis"`
}

// EdgeDTO represents a control-flow edge.
type EdgeDTO struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Stmt string `yaml:"stmt"`
}

// BlockDTO represents a block of the partitioning.
type BlockDTO struct {
	Kind      string   `yaml:"kind"`
	Recursive bool     `yaml:"recursive"`
	Entry     []string `yaml:"entry"`
	Exit      []string `yaml:"exit"`
	Locations []string `yaml:"locations"`
	Variables []string `yaml:"variables"`
	Locals    []string `yaml:"locals"`
}

// AnalysisDTO holds the engine options. Unset fields keep their defaults.
type AnalysisDTO struct {
	ProduceProofs     *bool `yaml:"produceProofs"`
	CheckProofs       *bool `yaml:"checkProofs"`
	MaxRecursionDepth *int  `yaml:"maxRecursionDepth"`
	MaxIterations     *int  `yaml:"maxIterations"`
	ProofCacheSize    *int  `yaml:"proofCacheSize"`
}
