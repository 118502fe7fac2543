package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myhealth/rehab-api/internal/docstore"
	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/logging"
	"myhealth/rehab-api/internal/repository/docrepo"
	"myhealth/rehab-api/internal/service"
)

func TestReadFixture_TargetAreaShapes(t *testing.T) {
	exercises, err := readFixture(strings.NewReader(`
exercises:
  - name: single
    targetArea: knee
  - name: list
    targetArea: [knee, hip]
`))
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.False(t, exercises[0].TargetArea.IsMultiple())
	assert.Equal(t, []string{"knee"}, exercises[0].TargetArea.Areas())
	assert.True(t, exercises[1].TargetArea.IsMultiple())
	assert.Equal(t, []string{"knee", "hip"}, exercises[1].TargetArea.Areas())
}

func TestReadFixture_Rejects(t *testing.T) {
	tests := map[string]string{
		"mapping area":  "exercises:\n  - name: x\n    targetArea: {a: b}\n",
		"unknown field": "exercises:\n  - name: x\n    colour: red\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := readFixture(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestReadFixture_ShippedCatalogue(t *testing.T) {
	f, err := os.Open("../../fixtures/exercises.yaml")
	require.NoError(t, err)
	defer f.Close()

	exercises, err := readFixture(f)
	require.NoError(t, err)
	assert.NotEmpty(t, exercises)
	for _, e := range exercises {
		assert.NotEmpty(t, e.Name)
		assert.False(t, e.TargetArea.IsZero(), e.Name)
	}
}

func TestSeed(t *testing.T) {
	log := logging.Discard()
	db := docstore.NewDB(docstore.NewMemoryStore(), log)
	svc := service.NewExerciseService(docrepo.NewExerciseRepository(db, log))
	ctx := context.Background()

	batch := func() []*domain.Exercise {
		return []*domain.Exercise{
			{Name: "a", TargetArea: domain.SingleArea("knee")},
			{Name: "b", TargetArea: domain.MultipleAreas("hip", "back")},
		}
	}

	created, skipped, err := seed(ctx, svc, batch(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, skipped)

	_, _, err = seed(ctx, svc, batch(), false)
	assert.ErrorIs(t, err, errCatalogueNotEmpty)

	more := append(batch(), &domain.Exercise{Name: "c", TargetArea: domain.SingleArea("neck")})
	created, skipped, err = seed(ctx, svc, more, true)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, skipped)

	all, err := svc.ListExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRun_FailsOnNonEmptyCatalogueWithoutForce(t *testing.T) {
	dir := t.TempDir()
	cfg := "store:\n  backend: file\n  data_dir: " + filepath.Join(dir, "data") + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))
	opts := options{Config: dir, File: "../../fixtures/exercises.yaml"}
	ctx := context.Background()

	require.NoError(t, run(ctx, opts))
	assert.ErrorIs(t, run(ctx, opts), errCatalogueNotEmpty)

	opts.Force = true
	assert.NoError(t, run(ctx, opts))

	opts.File = filepath.Join(dir, "missing.yaml")
	assert.Error(t, run(ctx, opts))
}
