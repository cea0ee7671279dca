package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/resto/internal/guide/application/commands"
)

func TestParseGrade(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    commands.GradeInput
		wantErr bool
	}{
		{name: "valid grade", input: "1=5", want: commands.GradeInput{CriterionID: 1, Value: 5}},
		{name: "larger criterion id", input: "12=3", want: commands.GradeInput{CriterionID: 12, Value: 3}},
		{name: "missing separator", input: "15", wantErr: true},
		{name: "non-numeric criterion", input: "service=5", wantErr: true},
		{name: "non-numeric value", input: "1=five", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGrade(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
