package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/vmath"
)

func TestResolveHit_Table(t *testing.T) {
	tests := []struct {
		name        string
		team        component.Team
		firstHit    component.Team
		hitting     component.Team
		wantTeam    component.Team
		wantFirst   component.Team
		wantOutcome HitOutcome
	}{
		{"friendly re-flag", component.TeamOne, component.TeamTwo, component.TeamOne, component.TeamOne, component.TeamOne, OutcomeFriendly},
		{"first enemy mark", component.TeamOne, component.TeamOne, component.TeamTwo, component.TeamOne, component.TeamTwo, OutcomeMarked},
		{"second enemy hit captures", component.TeamOne, component.TeamTwo, component.TeamTwo, component.TeamTwo, component.TeamTwo, OutcomeCaptured},
		{"other team resets mark", component.TeamOne, component.TeamTwo, component.TeamThree, component.TeamOne, component.TeamThree, OutcomeMarked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, first, outcome := ResolveHit(tt.team, tt.firstHit, tt.hitting)
			assert.Equal(t, tt.wantTeam, team)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantOutcome, outcome)
		})
	}
}

func TestApplyHit_TwoHitCaptureScenario(t *testing.T) {
	a := component.NewAgent(0, component.TeamOne, vmath.Vec3F{})
	b := component.NewAgent(1, component.TeamTwo, vmath.Vec3F{X: 50})
	a.FragCount = 3

	outcome := ApplyHit(&a, &b, b.Team)
	require.Equal(t, OutcomeMarked, outcome)
	assert.Equal(t, component.TeamOne, a.Team)
	assert.Equal(t, component.TeamTwo, a.FirstHitTeam)
	assert.Equal(t, uint32(3), a.FragCount)
	assert.Equal(t, uint32(0), b.FragCount)

	outcome = ApplyHit(&a, &b, b.Team)
	require.Equal(t, OutcomeCaptured, outcome)
	assert.Equal(t, component.TeamTwo, a.Team)
	assert.Equal(t, uint32(0), a.FragCount)
	assert.Equal(t, uint32(1), b.FragCount)
}

func TestApplyHit_InterveningTeamPreventsCapture(t *testing.T) {
	a := component.NewAgent(0, component.TeamOne, vmath.Vec3F{})
	b := component.NewAgent(1, component.TeamTwo, vmath.Vec3F{})
	c := component.NewAgent(2, component.TeamThree, vmath.Vec3F{})

	ApplyHit(&a, &b, b.Team)
	ApplyHit(&a, &c, c.Team)
	outcome := ApplyHit(&a, &b, b.Team)

	assert.Equal(t, OutcomeMarked, outcome)
	assert.Equal(t, component.TeamOne, a.Team)
}

func TestApplyHit_NilFirer(t *testing.T) {
	a := component.NewAgent(0, component.TeamOne, vmath.Vec3F{})
	a.FirstHitTeam = component.TeamFour

	assert.Equal(t, OutcomeCaptured, ApplyHit(&a, nil, component.TeamFour))
	assert.Equal(t, component.TeamFour, a.Team)
}

func TestApplyHit_CaptureNeedsTwoConsecutiveMarks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		team := component.Team(rapid.IntRange(0, component.TeamCount-1).Draw(t, "team"))
		hits := rapid.SliceOfN(rapid.IntRange(0, component.TeamCount-1), 1, 32).Draw(t, "hits")

		a := component.NewAgent(0, team, vmath.Vec3F{})
		for _, h := range hits {
			hitting := component.Team(h)
			before := a
			outcome := ApplyHit(&a, nil, hitting)

			if outcome == OutcomeCaptured {
				if before.Team == hitting || before.FirstHitTeam != hitting {
					t.Fatalf("capture without prior mark: before=%+v hitting=%v", before, hitting)
				}
			} else if a.Team != before.Team {
				t.Fatalf("team changed without capture")
			}
			if a.FirstHitTeam != hitting {
				t.Fatalf("first hit not updated to %v", hitting)
			}
		}
	})
}

func TestApplyHit_FriendlyFireNeverDamages(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		team := component.Team(rapid.IntRange(0, component.TeamCount-1).Draw(t, "team"))
		first := component.Team(rapid.IntRange(0, component.TeamCount-1).Draw(t, "first"))
		frags := rapid.Uint32().Draw(t, "frags")

		a := component.NewAgent(0, team, vmath.Vec3F{})
		a.FirstHitTeam = first
		a.FragCount = frags
		firer := component.NewAgent(1, team, vmath.Vec3F{})

		outcome := ApplyHit(&a, &firer, team)
		if outcome != OutcomeFriendly || a.Team != team || a.FragCount != frags || firer.FragCount != 0 {
			t.Fatalf("friendly hit changed state: outcome=%v agent=%+v", outcome, a)
		}
	})
}
