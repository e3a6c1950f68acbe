package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForWeeklyJobs(t *testing.T) {
	assert.Equal(t, "0-2", tierForWeeklyJobs(0))
	assert.Equal(t, "0-2", tierForWeeklyJobs(2))
	assert.Equal(t, "2-4", tierForWeeklyJobs(3))
	assert.Equal(t, "2-4", tierForWeeklyJobs(4))
	assert.Equal(t, "5-7", tierForWeeklyJobs(5))
	assert.Equal(t, "5-7", tierForWeeklyJobs(9))
}

func TestCrewForMove(t *testing.T) {
	tests := []struct {
		name      string
		rooms     int
		stairs    bool
		tier      string
		wantCrew  string
		wantPrice int
	}{
		{"studio no stairs", 1, false, "0-2", CrewTwoMovers, 100},
		{"two rooms no stairs busy week", 2, false, "5-7", CrewTwoMovers, 150},
		{"two rooms with stairs", 2, true, "0-2", CrewThreeMovers, 125},
		{"three rooms no stairs", 3, false, "2-4", CrewThreeMovers, 150},
		{"three rooms with stairs", 3, true, "0-2", CrewThreeMovers, 125},
		{"four rooms", 4, false, "0-2", CrewFourMovers, 180},
		{"five rooms with stairs peak tier", 5, true, "5-7", CrewFourMovers, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, crew := crewForMove(tt.rooms, tt.stairs, tt.tier)
			assert.Equal(t, tt.wantCrew, crew)
			assert.Equal(t, tt.wantPrice, price)
		})
	}
}

func TestCrewHourlyRate(t *testing.T) {
	assert.Equal(t, 125, CrewHourlyRate(CrewTwoMovers))
	assert.Equal(t, 150, CrewHourlyRate(CrewThreeMovers))
	assert.Equal(t, 200, CrewHourlyRate(CrewFourMovers))
	assert.Equal(t, 0, CrewHourlyRate("unknown"))
}
