package domain

import "fmt"

// Settings holds user preferences. The document is loaded and saved whole.
type Settings struct {
	ShowScores           bool                 `json:"showScores" yaml:"showScores"`
	EnabledPersonalities EnabledPersonalities `json:"enabledPersonalities" yaml:"enabledPersonalities"`
	Theme                string               `json:"theme" yaml:"theme"`
	Notifications        NotificationSettings `json:"notifications" yaml:"notifications"`
	Preferences          PreferenceSettings   `json:"preferences" yaml:"preferences"`
}

type EnabledPersonalities struct {
	Therapist bool `json:"therapist" yaml:"therapist"`
	Friend    bool `json:"friend" yaml:"friend"`
	Trainer   bool `json:"trainer" yaml:"trainer"`
}

type NotificationSettings struct {
	StreakReminders bool `json:"streakReminders" yaml:"streakReminders"`
	DailyGoals      bool `json:"dailyGoals" yaml:"dailyGoals"`
	WeeklyReports   bool `json:"weeklyReports" yaml:"weeklyReports"`
}

type PreferenceSettings struct {
	DefaultVisualization VisualizationType `json:"defaultVisualization" yaml:"defaultVisualization"`
	TimeFormat           string            `json:"timeFormat" yaml:"timeFormat"`
	StartWeekOn          string            `json:"startWeekOn" yaml:"startWeekOn"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	return Settings{
		ShowScores: true,
		EnabledPersonalities: EnabledPersonalities{
			Therapist: true,
			Friend:    true,
			Trainer:   true,
		},
		Theme: "dark",
		Notifications: NotificationSettings{
			StreakReminders: true,
			DailyGoals:      true,
			WeeklyReports:   false,
		},
		Preferences: PreferenceSettings{
			DefaultVisualization: VizHeatmap,
			TimeFormat:           "24h",
			StartWeekOn:          "monday",
		},
	}
}

// PersonalityEnabled reports whether p may be used for replies.
// The default personality is always enabled.
func (s Settings) PersonalityEnabled(p Personality) bool {
	switch p {
	case PersonalityTherapist:
		return s.EnabledPersonalities.Therapist
	case PersonalityFriend:
		return s.EnabledPersonalities.Friend
	case PersonalityTrainer:
		return s.EnabledPersonalities.Trainer
	default:
		return true
	}
}

// Validate checks enum-valued fields.
func (s Settings) Validate() error {
	switch s.Theme {
	case "light", "dark", "system":
	default:
		return WrapError(ErrCodeInvalid, ErrInvalidSettings.Message, fmt.Errorf("theme %q", s.Theme))
	}
	if !ValidVisualizations[s.Preferences.DefaultVisualization] {
		return WrapError(ErrCodeInvalid, ErrInvalidSettings.Message,
			fmt.Errorf("defaultVisualization %q", s.Preferences.DefaultVisualization))
	}
	switch s.Preferences.TimeFormat {
	case "12h", "24h":
	default:
		return WrapError(ErrCodeInvalid, ErrInvalidSettings.Message, fmt.Errorf("timeFormat %q", s.Preferences.TimeFormat))
	}
	switch s.Preferences.StartWeekOn {
	case "sunday", "monday":
	default:
		return WrapError(ErrCodeInvalid, ErrInvalidSettings.Message, fmt.Errorf("startWeekOn %q", s.Preferences.StartWeekOn))
	}
	return nil
}
