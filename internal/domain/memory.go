package domain

import (
	"fmt"
	"strings"
	"time"
)

// maxMemoryItems caps every memory list.
const maxMemoryItems = 10

// UserMemory is the personal context remembered across conversations.
type UserMemory struct {
	ID                  string              `json:"id" yaml:"id"`
	Name                string              `json:"name,omitempty" yaml:"name,omitempty"`
	Preferences         MemoryPreferences   `json:"preferences" yaml:"preferences"`
	PersonalContext     PersonalContext     `json:"personalContext" yaml:"personalContext"`
	ConversationContext ConversationContext `json:"conversationContext" yaml:"conversationContext"`
	CreatedAt           time.Time           `json:"createdAt" yaml:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt" yaml:"updatedAt"`
}

type MemoryPreferences struct {
	PreferredActivities   []string `json:"preferredActivities" yaml:"preferredActivities"`
	TimeOfDay             string   `json:"timeOfDay" yaml:"timeOfDay"`
	PersonalityPreference string   `json:"personalityPreference" yaml:"personalityPreference"`
	MotivationStyle       string   `json:"motivationStyle" yaml:"motivationStyle"`
}

type PersonalContext struct {
	Goals             []string `json:"goals" yaml:"goals"`
	Challenges        []string `json:"challenges" yaml:"challenges"`
	Achievements      []string `json:"achievements" yaml:"achievements"`
	RecurringPatterns []string `json:"recurringPatterns" yaml:"recurringPatterns"`
}

type ConversationContext struct {
	LastSession    time.Time `json:"lastSession" yaml:"lastSession"`
	CommonTopics   []string  `json:"commonTopics" yaml:"commonTopics"`
	StrugglingWith []string  `json:"strugglingWith" yaml:"strugglingWith"`
	Celebrating    []string  `json:"celebrating" yaml:"celebrating"`
}

// NewUserMemory returns an empty memory document.
func NewUserMemory(id string, now time.Time) UserMemory {
	return UserMemory{
		ID: id,
		Preferences: MemoryPreferences{
			TimeOfDay:             "any",
			PersonalityPreference: "adaptive",
			MotivationStyle:       "encouraging",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MemoryCategories lists the list-valued fields addressable by name.
var MemoryCategories = []string{
	"preferredActivities", "goals", "challenges", "achievements",
	"recurringPatterns", "commonTopics", "strugglingWith", "celebrating",
}

func (m *UserMemory) list(category string) (*[]string, bool) {
	switch category {
	case "preferredActivities":
		return &m.Preferences.PreferredActivities, true
	case "goals":
		return &m.PersonalContext.Goals, true
	case "challenges":
		return &m.PersonalContext.Challenges, true
	case "achievements":
		return &m.PersonalContext.Achievements, true
	case "recurringPatterns":
		return &m.PersonalContext.RecurringPatterns, true
	case "commonTopics":
		return &m.ConversationContext.CommonTopics, true
	case "strugglingWith":
		return &m.ConversationContext.StrugglingWith, true
	case "celebrating":
		return &m.ConversationContext.Celebrating, true
	}
	return nil, false
}

// Items returns the entries of a list category, or nil for unknown names.
func (m *UserMemory) Items(category string) []string {
	if l, ok := m.list(category); ok {
		return *l
	}
	return nil
}

// Remember adds item to category, most recent last, dropping duplicates and
// the oldest items beyond the cap.
func (m *UserMemory) Remember(category, item string) error {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil
	}
	l, ok := m.list(category)
	if !ok {
		return NewError(ErrCodeInvalid, fmt.Sprintf("unknown memory category %q", category))
	}
	for i, v := range *l {
		if strings.EqualFold(v, item) {
			*l = append((*l)[:i:i], (*l)[i+1:]...)
			break
		}
	}
	*l = append(*l, item)
	if len(*l) > maxMemoryItems {
		*l = (*l)[len(*l)-maxMemoryItems:]
	}
	return nil
}

// Forget removes item from category. Reports whether it was present.
func (m *UserMemory) Forget(category, item string) (bool, error) {
	l, ok := m.list(category)
	if !ok {
		return false, NewError(ErrCodeInvalid, fmt.Sprintf("unknown memory category %q", category))
	}
	for i, v := range *l {
		if v == item {
			*l = append((*l)[:i:i], (*l)[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Clear empties the named fields. "all" or no fields clears every list and
// the remembered name.
func (m *UserMemory) Clear(fields ...string) error {
	if len(fields) == 0 || (len(fields) == 1 && fields[0] == "all") {
		fields = append([]string{"name"}, MemoryCategories...)
	}
	for _, f := range fields {
		if f == "name" {
			m.Name = ""
			continue
		}
		l, ok := m.list(f)
		if !ok {
			return NewError(ErrCodeInvalid, fmt.Sprintf("unknown memory field %q", f))
		}
		*l = nil
	}
	return nil
}

// ContextSummary renders the memory as a short prompt fragment.
func (m *UserMemory) ContextSummary() string {
	var parts []string
	if m.Name != "" {
		parts = append(parts, "Name: "+m.Name)
	}
	add := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		parts = append(parts, label+": "+strings.Join(items, ", "))
	}
	add("Goals", m.PersonalContext.Goals)
	add("Challenges", m.PersonalContext.Challenges)
	add("Achievements", m.PersonalContext.Achievements)
	add("Favorite activities", m.Preferences.PreferredActivities)
	add("Struggling with", m.ConversationContext.StrugglingWith)
	add("Celebrating", m.ConversationContext.Celebrating)
	return strings.Join(parts, ". ")
}
