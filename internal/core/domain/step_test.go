package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/predex/internal/core/domain"
)

func TestDxOption_Flag(t *testing.T) {
	assert.Equal(t, "--no-optimize", domain.DxNoOptimize.Flag())
	assert.Equal(t, "--force-jumbo", domain.DxForceJumbo.Flag())
}

func TestNewDxOptions_Normalizes(t *testing.T) {
	opts := domain.NewDxOptions(domain.DxNoOptimize, domain.DxForceJumbo, domain.DxNoOptimize)

	assert.Equal(t, domain.DxOptions{domain.DxForceJumbo, domain.DxNoOptimize}, opts)
	assert.True(t, opts.Has(domain.DxForceJumbo))
	assert.Equal(t, []string{"--force-jumbo", "--no-optimize"}, opts.Flags())
}

func TestStep_Describe(t *testing.T) {
	tests := []struct {
		name string
		step domain.Step
		want string
	}{
		{
			name: "forced remove",
			step: domain.Step{Kind: domain.StepRemove, Name: "rm", Path: "out/a.dex.jar", Force: true},
			want: "rm -f out/a.dex.jar",
		},
		{
			name: "plain remove",
			step: domain.Step{Kind: domain.StepRemove, Name: "rm", Path: "out/a.dex.jar"},
			want: "rm out/a.dex.jar",
		},
		{
			name: "mkdir",
			step: domain.Step{Kind: domain.StepMkdir, Name: "mkdir", Path: "out"},
			want: "mkdir -p out",
		},
		{
			name: "dx",
			step: domain.Step{
				Kind:    domain.StepTranslate,
				Name:    "dx",
				Path:    "out/a.dex.jar",
				Inputs:  []string{"build/a.jar"},
				Options: domain.NewDxOptions(domain.DxNoOptimize, domain.DxForceJumbo),
			},
			want: "dx --dex --force-jumbo --no-optimize --output out/a.dex.jar build/a.jar",
		},
		{
			name: "record",
			step: domain.Step{
				Kind:     domain.StepRecordMetadata,
				Name:     "record_empty_dx",
				Metadata: []domain.MetadataEntry{{Key: "K1", Value: "v"}, {Key: "K2", Value: "v"}},
			},
			want: "record_empty_dx K1=v K2=v",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.Describe())
		})
	}
}

func TestStepSequence_Immutable(t *testing.T) {
	steps := []domain.Step{
		{Kind: domain.StepRemove, Path: "a"},
		{Kind: domain.StepMkdir, Path: "b"},
	}
	seq := domain.NewStepSequence(steps...)

	steps[0].Path = "mutated"

	assert.Equal(t, "a", seq.At(0).Path)
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, []domain.StepKind{domain.StepRemove, domain.StepMkdir}, seq.Kinds())
	assert.True(t, seq.Contains(domain.StepMkdir))
	assert.False(t, seq.Contains(domain.StepTranslate))
	assert.Equal(t, "rm a\nmkdir -p b", seq.String())
}
