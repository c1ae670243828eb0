package decision

// Canonical career path names. Declaration order is the tie-break order for
// the partition step: the first-declared path wins a score tie.
const (
	PathFrontend    = "Frontend Engineering"
	PathBackend     = "Backend Engineering"
	PathDataScience = "Data Science / ML"
	PathCompetitive = "Competitive Programming"
)

// Paths lists the fixed career space in declaration order.
var Paths = []string{PathFrontend, PathBackend, PathDataScience, PathCompetitive}

// weightTerm is one weighted feature contribution; negative weights penalize.
type weightTerm struct {
	Feature string
	Weight  float64
}

// pathWeights is the locked per-path scoring table. Positive weights per path
// sum to at most 1.0; the explicit negative easy-bias terms keep padding with
// trivial solved problems from inflating depth-sensitive paths.
var pathWeights = map[string][]weightTerm{
	PathFrontend: {
		{FeatProjectStrength, 0.4},
		{FeatProjectVolume, 0.2},
		{FeatInterestDev, 0.4},
	},
	PathBackend: {
		{FeatProjectStrength, 0.3},
		{FeatDSADepth, 0.2},
		{FeatInterestDev, 0.3},
		{FeatInterestPS, 0.2},
	},
	PathDataScience: {
		{FeatDSADepth, 0.4},
		{FeatInterestData, 0.4},
		{FeatEasyBias, -0.2},
	},
	PathCompetitive: {
		{FeatDSADepth, 0.5},
		{FeatInterestPS, 0.3},
		{FeatEasyBias, -0.2},
	},
}

// pathDifficulty is the baseline skill-acquisition cost per path, used only
// for the low-bandwidth context penalty.
var pathDifficulty = map[string]float64{
	PathFrontend:    0.2,
	PathBackend:     0.3,
	PathDataScience: 0.6,
	PathCompetitive: 0.4,
}

// pathSkills maps each path to the representative skills whose mean market
// multiplier adjusts its score. Only skills in the static market table are
// listed, so a decision run never triggers the external classifier.
// Competitive programming has no hiring-market proxy and stays neutral.
var pathSkills = map[string][]string{
	PathFrontend:    {"react", "next.js"},
	PathBackend:     {"node.js", "go", "java"},
	PathDataScience: {"pytorch", "tensorflow", "python"},
	PathCompetitive: {},
}
