package voting

import (
	"errors"
	"testing"
	"time"

	"github.com/cadyjko/slogan-vote/models"
)

func rec(sloganID int, finalized bool) models.VoteRecord {
	now := time.Now()
	return models.VoteRecord{
		VoterID:   "tester",
		SloganID:  sloganID,
		Finalized: finalized,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name    string
		rows    []models.VoteRecord
		want    string
		wantErr error
	}{
		{
			name: "no rows means not started",
			rows: nil,
			want: models.StateNotStarted,
		},
		{
			name: "open rows mean selecting",
			rows: []models.VoteRecord{rec(1, false), rec(2, false)},
			want: models.StateSelecting,
		},
		{
			name: "all finalized rows mean finalized",
			rows: []models.VoteRecord{rec(1, true), rec(2, true)},
			want: models.StateFinalized,
		},
		{
			name: "single finalized row",
			rows: []models.VoteRecord{rec(1, true)},
			want: models.StateFinalized,
		},
		{
			name:    "mixed rows are corrupt",
			rows:    []models.VoteRecord{rec(1, true), rec(2, false)},
			wantErr: ErrLedgerCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveState(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DeriveState error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DeriveState failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("DeriveState = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanMutate(t *testing.T) {
	if !CanMutate(models.StateNotStarted) {
		t.Error("CanMutate(not_started) = false")
	}
	if !CanMutate(models.StateSelecting) {
		t.Error("CanMutate(selecting) = false")
	}
	if CanMutate(models.StateFinalized) {
		t.Error("CanMutate(finalized) = true")
	}
}

func TestCanFinalize(t *testing.T) {
	tests := []struct {
		name  string
		state string
		count int
		max   int
		want  bool
	}{
		{"selecting within limit", models.StateSelecting, 2, 3, true},
		{"selecting at limit", models.StateSelecting, 3, 3, true},
		{"empty selection", models.StateSelecting, 0, 3, false},
		{"over limit", models.StateSelecting, 4, 3, false},
		{"already finalized", models.StateFinalized, 2, 3, false},
		{"not started is empty", models.StateNotStarted, 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanFinalize(tt.state, tt.count, tt.max); got != tt.want {
				t.Errorf("CanFinalize(%q, %d, %d) = %v, want %v", tt.state, tt.count, tt.max, got, tt.want)
			}
		})
	}
}
