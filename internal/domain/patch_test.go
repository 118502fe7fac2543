package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrainingPlanPatch_KeepsUnnamedFields(t *testing.T) {
	plan := TrainingPlan{
		ID:          3,
		UserID:      1,
		Title:       "Knee week",
		Duration:    4,
		Difficulty:  DefaultPlanDifficulty,
		WeeklyPlans: json.RawMessage(`[{"week":1}]`),
		Notes:       "slow",
	}
	title := "Knee week 2"
	TrainingPlanPatch{Title: &title}.Apply(&plan)

	assert.Equal(t, "Knee week 2", plan.Title)
	assert.Equal(t, 4, plan.Duration)
	assert.Equal(t, DefaultPlanDifficulty, plan.Difficulty)
	assert.JSONEq(t, `[{"week":1}]`, string(plan.WeeklyPlans))
	assert.Equal(t, "slow", plan.Notes)
}

func TestUserPatch_Apply(t *testing.T) {
	u := User{Username: "alice", Nickname: "Alice", Bio: "old", Expertise: []string{"knee"}}
	bio := ""
	UserPatch{Bio: &bio}.Apply(&u)

	assert.Equal(t, "", u.Bio)
	assert.Equal(t, "Alice", u.Nickname)
	assert.Equal(t, []string{"knee"}, u.Expertise)
}

func TestUser_Snapshot(t *testing.T) {
	u := User{ID: 7, Username: "bob", Avatar: "a.png", IsExpert: true}
	assert.Equal(t, AuthorSnapshot{ID: 7, Name: "bob", Avatar: "a.png", IsExpert: true}, u.Snapshot())

	u.Nickname = "Bobby"
	assert.Equal(t, "Bobby", u.Snapshot().Name)
}

func TestTrainingRecordPatch_Apply(t *testing.T) {
	r := TrainingRecord{Duration: 30, Completed: false, Notes: "n"}
	done := true
	TrainingRecordPatch{Completed: &done}.Apply(&r)

	assert.True(t, r.Completed)
	assert.Equal(t, 30, r.Duration)
	assert.Equal(t, "n", r.Notes)
}
