package companion

import (
	"testing"

	"github.com/alexanderramin/streakmind/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetectPersonality(t *testing.T) {
	tests := []struct {
		text string
		want domain.Personality
	}{
		{"I feel so stressed about exams", domain.PersonalityTherapist},
		{"having a hard time at the gym", domain.PersonalityTherapist},
		{"Hit a new personal record on deadlift", domain.PersonalityTrainer},
		{"I missed my run, feeling lazy", domain.PersonalityTherapist},
		{"skipped the workout", domain.PersonalityTrainer},
		{"This app is awesome", domain.PersonalityFriend},
		{"what's up buddy", domain.PersonalityFriend},
		{"Slept 8 hours", domain.PersonalityDefault},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPersonality(tt.text))
		})
	}
}

func TestEffectivePersonality_DisabledFallsBack(t *testing.T) {
	s := domain.DefaultSettings()
	s.EnabledPersonalities.Trainer = false

	assert.Equal(t, domain.PersonalityDefault, EffectivePersonality(domain.PersonalityTrainer, s))
	assert.Equal(t, domain.PersonalityFriend, EffectivePersonality(domain.PersonalityFriend, s))
	assert.Equal(t, domain.PersonalityDefault, EffectivePersonality(domain.PersonalityDefault, s))
}
