package bootstrap

import (
	"testing"

	"go-prescription-portal/config"

	"github.com/stretchr/testify/assert"
)

func TestSeedEmail(t *testing.T) {
	assert.Equal(t, "sarah.williams@example.com", seedEmail("Dr. Sarah Williams"))
	assert.Equal(t, "john.smith@example.com", seedEmail("John Smith"))
}

func TestSeedPrescriptions_ReferenceSeededPeople(t *testing.T) {
	doctors := map[string]bool{}
	for _, d := range seedDoctors {
		doctors[d.name] = true
	}
	patients := map[string]bool{}
	for _, p := range seedPatients {
		patients[p] = true
	}

	for _, p := range seedPrescriptions {
		assert.True(t, doctors[p.doctor], p.doctor)
		assert.True(t, patients[p.patient], p.patient)
		assert.NotEmpty(t, p.medicines)
		for _, m := range p.medicines {
			assert.True(t, m.DosageFrequency.IsValid(), m.MedicineName)
			assert.True(t, m.Timing.IsValid(), m.MedicineName)
		}
	}
}

func TestNewLogger_Level(t *testing.T) {
	log := NewLogger(config.AppConfig{LogLevel: "debug"})
	assert.Equal(t, "debug", log.GetLevel().String())

	log = NewLogger(config.AppConfig{LogLevel: "chatty"})
	assert.Equal(t, "info", log.GetLevel().String())
}
