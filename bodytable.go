package ragdoll

// bodySpec is the spawn-time definition of one ragdoll body part: a box
// fixture at a fixed pose, tagged by name so the Contact Monitor can
// identify it later.
type bodySpec struct {
	Name                  string
	X, Y, Angle           float64
	HalfWidth, HalfHeight float64
	Friction, Density     float64
}

// bodySpecs lists the twelve body parts in the exact order the World
// Builder must construct them in. This also fixes the iteration order of
// the 60-float observation block.
var bodySpecs = []bodySpec{
	{"torso", 2.511172622600016, -1.870951753395794, -1.251449711930133, 3.275, 1.425, 0.2, 1},
	{"head", 3.888130278719558, -5.621802929095265, 0.064484158352251, 1.075, 1.325, 0.2, 1},
	{"leftArm", 4.417861014480877, -2.806563606410589, 0.904009589527283, 1.850, 0.625, 0.2, 1},
	{"leftCalf", 3.125857319740870, 5.525511655361298, -1.590397152822527, 2.500, 0.750, 0.2, 1},
	{"leftFoot", 3.926921842806667, 8.088840320496220, 0.120275246434088, 1.350, 0.675, 1.5, 3},
	{"leftForearm", 5.830008603424893, -2.873353963115958, -1.204977261842124, 1.750, 0.550, 0.2, 1},
	{"leftThigh", 2.564898762820388, 1.648090668682522, -2.017723442682339, 2.525, 1.000, 0.2, 1},
	{"rightArm", 1.181230366327285, -3.500025651860101, -0.522221740463439, 1.950, 0.750, 0.2, 1},
	{"rightCalf", -0.072539057367905, 5.347881871063159, -0.758885996710445, 2.500, 0.750, 0.2, 1},
	{"rightFoot", -1.125474264390871, 7.567193169625567, 0.589760541821960, 1.350, 0.725, 1.5, 3},
	{"rightForearm", 0.407820642079743, -1.059995323308417, -1.755335828385730, 2.225, 0.675, 0.2, 1},
	{"rightThigh", 1.612018613567877, 2.061532056188152, 1.484942296452803, 2.650, 1.000, 0.2, 1},
}

// upperBodyFallParts are the parts whose contact with the track triggers
// a fall. Torso is deliberately excluded — see DESIGN.md's Open Question
// decision on this.
var upperBodyFallParts = map[string]bool{
	"head":         true,
	"leftArm":      true,
	"rightArm":     true,
	"leftForearm":  true,
	"rightForearm": true,
}

// footParts are the parts that can arm and complete a jump.
var footParts = map[string]bool{
	"leftFoot":  true,
	"rightFoot": true,
}
