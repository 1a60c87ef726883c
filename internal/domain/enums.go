package domain

// Unit is the measure attached to a logged amount.
type Unit string

const (
	UnitQuestions Unit = "questions"
	UnitMinutes   Unit = "minutes"
	UnitHours     Unit = "hours"
	UnitPages     Unit = "pages"
	UnitSession   Unit = "session"
	UnitDistance  Unit = "distance"
)

// ValidUnits is the canonical set of accepted unit strings.
var ValidUnits = map[Unit]bool{
	UnitQuestions: true, UnitMinutes: true, UnitHours: true,
	UnitPages: true, UnitSession: true, UnitDistance: true,
}

// VisualizationType is a dashboard rendering hint for an activity.
type VisualizationType string

const (
	VizHeatmap  VisualizationType = "heatmap"
	VizBar      VisualizationType = "bar"
	VizProgress VisualizationType = "progress"
	VizPie      VisualizationType = "pie"
)

// ValidVisualizations is the canonical set of accepted visualization strings.
var ValidVisualizations = map[VisualizationType]bool{
	VizHeatmap: true, VizBar: true, VizProgress: true, VizPie: true,
}

// Builtin activity categories recognized without a definition.
const (
	ActivityCoding     = "coding"
	ActivityGym        = "gym"
	ActivitySleep      = "sleep"
	ActivityReading    = "reading"
	ActivityMeditation = "meditation"
)

// BuiltinActivities lists the builtin categories in parser priority order.
var BuiltinActivities = []string{
	ActivityCoding, ActivityGym, ActivitySleep, ActivityReading, ActivityMeditation,
}

// IsBuiltinActivity reports whether name is one of the builtin categories.
func IsBuiltinActivity(name string) bool {
	for _, b := range BuiltinActivities {
		if b == name {
			return true
		}
	}
	return false
}

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Personality selects the conversational tone of generated replies.
type Personality string

const (
	PersonalityDefault   Personality = "default"
	PersonalityTherapist Personality = "therapist"
	PersonalityFriend    Personality = "friend"
	PersonalityTrainer   Personality = "trainer"
)
