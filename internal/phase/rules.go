package phase

// Phase is a named construction activity category with ordering constraints
// relative to other phases.
type Phase string

const (
	Demolition      Phase = "demolition"
	Excavation      Phase = "excavation"
	Foundation      Phase = "foundation"
	Framing         Phase = "framing"
	Roofing         Phase = "roofing"
	WindowsDoors    Phase = "windows_doors"
	RoughPlumbing   Phase = "rough_plumbing"
	RoughElectrical Phase = "rough_electrical"
	RoughHVAC       Phase = "rough_hvac"
	Insulation      Phase = "insulation"
	Drywall         Phase = "drywall"
	Painting        Phase = "painting"
	Cabinets        Phase = "cabinets"
	Countertops     Phase = "countertops"
	Flooring        Phase = "flooring"
	Trim            Phase = "trim"
	FinishPlumbing  Phase = "finish_plumbing"
	FinishElectric  Phase = "finish_electrical"
	Landscaping     Phase = "landscaping"
	FinalCleanup    Phase = "final_cleanup"
)

// Rule describes one construction phase: the keywords that classify a task
// into it, the phases it must follow or precede, a typical duration, and
// whether the phase ends with an inspection.
type Rule struct {
	Phase              Phase
	Keywords           []string
	After              []Phase
	Before             []Phase
	TypicalDays        int
	RequiresInspection bool
}

// rules is the static sequence knowledge base. Order matters: classification
// scans the table top to bottom and the first keyword match wins, so more
// specific entries (e.g. rough trades) sit above broader ones.
var rules = []Rule{
	{
		Phase:       Demolition,
		Keywords:    []string{"demo", "demolition", "tear out", "tear-out", "removal"},
		Before:      []Phase{Excavation, Foundation, Framing},
		TypicalDays: 3,
	},
	{
		Phase:       Excavation,
		Keywords:    []string{"excavat", "grading", "dig", "earthwork", "site prep"},
		After:       []Phase{Demolition},
		Before:      []Phase{Foundation},
		TypicalDays: 4,
	},
	{
		Phase:              Foundation,
		Keywords:           []string{"foundation", "footing", "slab", "concrete pour", "stem wall"},
		After:              []Phase{Excavation},
		Before:             []Phase{Framing},
		TypicalDays:        7,
		RequiresInspection: true,
	},
	{
		Phase:              Framing,
		Keywords:           []string{"framing", "frame", "stud", "joist", "truss", "sheathing"},
		After:              []Phase{Foundation},
		Before:             []Phase{RoughPlumbing, RoughElectrical, RoughHVAC, Roofing, Drywall},
		TypicalDays:        10,
		RequiresInspection: true,
	},
	{
		Phase:       Roofing,
		Keywords:    []string{"roof", "shingle", "underlayment", "flashing"},
		After:       []Phase{Framing},
		Before:      []Phase{Insulation, Drywall},
		TypicalDays: 4,
	},
	{
		Phase:       WindowsDoors,
		Keywords:    []string{"window", "exterior door", "slider", "skylight"},
		After:       []Phase{Framing},
		Before:      []Phase{Insulation, Drywall},
		TypicalDays: 3,
	},
	{
		Phase:              RoughPlumbing,
		Keywords:           []string{"rough plumbing", "rough-in plumbing", "plumbing rough", "water line", "drain line", "dwv"},
		After:              []Phase{Framing},
		Before:             []Phase{Insulation, Drywall},
		TypicalDays:        5,
		RequiresInspection: true,
	},
	{
		Phase:              RoughElectrical,
		Keywords:           []string{"rough electrical", "rough-in electrical", "electrical rough", "wiring", "panel", "circuit"},
		After:              []Phase{Framing},
		Before:             []Phase{Insulation, Drywall},
		TypicalDays:        5,
		RequiresInspection: true,
	},
	{
		Phase:              RoughHVAC,
		Keywords:           []string{"hvac", "ductwork", "duct", "furnace", "air handler"},
		After:              []Phase{Framing},
		Before:             []Phase{Insulation, Drywall},
		TypicalDays:        4,
		RequiresInspection: true,
	},
	{
		Phase:              Insulation,
		Keywords:           []string{"insulation", "insulate", "batt", "blown-in", "vapor barrier"},
		After:              []Phase{RoughPlumbing, RoughElectrical, RoughHVAC, Roofing},
		Before:             []Phase{Drywall},
		TypicalDays:        2,
		RequiresInspection: true,
	},
	{
		Phase:       Drywall,
		Keywords:    []string{"drywall", "sheetrock", "gypsum", "taping", "mudding", "texture"},
		After:       []Phase{Framing, Insulation, RoughPlumbing, RoughElectrical, RoughHVAC},
		Before:      []Phase{Painting, Cabinets, Trim, Flooring},
		TypicalDays: 6,
	},
	{
		Phase:       Painting,
		Keywords:    []string{"paint", "primer", "staining"},
		After:       []Phase{Drywall},
		Before:      []Phase{Flooring, FinishPlumbing, FinishElectric},
		TypicalDays: 4,
	},
	{
		Phase:       Cabinets,
		Keywords:    []string{"cabinet", "vanity", "built-in"},
		After:       []Phase{Drywall, Painting},
		Before:      []Phase{Countertops},
		TypicalDays: 3,
	},
	{
		Phase:       Countertops,
		Keywords:    []string{"countertop", "counter top", "granite", "quartz", "laminate top"},
		After:       []Phase{Cabinets},
		Before:      []Phase{FinishPlumbing},
		TypicalDays: 2,
	},
	{
		Phase:       Flooring,
		Keywords:    []string{"flooring", "hardwood", "tile", "carpet", "laminate", "vinyl plank"},
		After:       []Phase{Painting, Drywall},
		Before:      []Phase{Trim},
		TypicalDays: 4,
	},
	{
		Phase:       Trim,
		Keywords:    []string{"trim", "baseboard", "casing", "crown molding", "interior door"},
		After:       []Phase{Flooring, Painting},
		TypicalDays: 4,
	},
	{
		Phase:       FinishPlumbing,
		Keywords:    []string{"finish plumbing", "plumbing fixture", "faucet", "toilet", "sink install"},
		After:       []Phase{Countertops, Painting},
		TypicalDays: 2,
	},
	{
		Phase:              FinishElectric,
		Keywords:           []string{"finish electrical", "electrical fixture", "light fixture", "outlet", "switch plate"},
		After:              []Phase{Painting},
		TypicalDays:        2,
		RequiresInspection: true,
	},
	{
		Phase:       Landscaping,
		Keywords:    []string{"landscap", "sod", "irrigation", "planting", "hardscape"},
		After:       []Phase{Foundation},
		TypicalDays: 5,
	},
	{
		Phase:       FinalCleanup,
		Keywords:    []string{"cleanup", "clean up", "final clean", "punch list", "punch-out"},
		After:       []Phase{Trim, FinishPlumbing, FinishElectric},
		TypicalDays: 2,
	},
}

// byPhase is an index over rules for direct lookups. Built once at process
// start; the table is immutable afterwards.
var byPhase = func() map[Phase]Rule {
	m := make(map[Phase]Rule, len(rules))
	for _, r := range rules {
		m[r.Phase] = r
	}
	return m
}()

// RuleFor returns the rule for the given phase.
func RuleFor(p Phase) (Rule, bool) {
	r, ok := byPhase[p]
	return r, ok
}

// RequiresInspection reports whether the phase ends with an inspection.
func RequiresInspection(p Phase) bool {
	return byPhase[p].RequiresInspection
}

// TypicalDuration returns the typical duration in days for the phase, or 0
// for an unknown phase.
func TypicalDuration(p Phase) int {
	return byPhase[p].TypicalDays
}
