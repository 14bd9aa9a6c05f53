package recipient

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/aidledger/internal/models"
)

func TestParseRef(t *testing.T) {
	parent := "3f1c2a8e-5b7d-4e0a-9c6f-1a2b3c4d5e6f"

	tests := []struct {
		name    string
		in      string
		want    Ref
		wantErr bool
	}{
		{name: "plain id", in: parent, want: Record(parent)},
		{name: "additional", in: "additional_" + parent + "_0", want: AdditionalMember(parent, 0)},
		{name: "additional high index", in: "additional_" + parent + "_12", want: AdditionalMember(parent, 12)},
		{name: "walk-in", in: "walkin_1712345678901", want: WalkIn("1712345678901", "")},
		{name: "trimmed", in: "  " + parent + " ", want: Record(parent)},
		{name: "empty", in: "", wantErr: true},
		{name: "walk-in without token", in: "walkin_", wantErr: true},
		{name: "additional without index", in: "additional_" + parent, wantErr: true},
		{name: "additional negative index", in: "additional_" + parent + "_-1", wantErr: true},
		{name: "additional padded index", in: "additional_" + parent + "_01", wantErr: true},
		{name: "additional non-numeric", in: "additional_" + parent + "_x", wantErr: true},
		{name: "additional bad parent", in: "additional_not-a-uuid_3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRef(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdditionalRefRoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		parent := uuid.New().String()
		index := i * 7
		s := fmt.Sprintf("additional_%s_%d", parent, index)

		ref, err := ParseRef(s)
		require.NoError(t, err)
		assert.Equal(t, KindAdditionalMember, ref.Kind)
		assert.Equal(t, parent, ref.ParentID)
		assert.Equal(t, index, ref.MemberIndex)
		assert.Equal(t, s, ref.String())
	}
}

func TestRefStringIsReversible(t *testing.T) {
	refs := []Ref{
		Individual(uuid.New().String()),
		Child(uuid.New().String(), uuid.New().String()),
		AdditionalMember(uuid.New().String(), 4),
		WalkIn("1700000000000", "Sara"),
	}
	for _, ref := range refs {
		parsed, err := ParseRef(ref.String())
		require.NoError(t, err)
		assert.Equal(t, ref.String(), parsed.String())
	}
}

func TestRefTextMarshaling(t *testing.T) {
	type payload struct {
		Ref Ref `json:"ref"`
	}
	parent := uuid.New().String()

	b, err := json.Marshal(payload{Ref: AdditionalMember(parent, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ref":"additional_`+parent+`_2"}`, string(b))

	var got payload
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, AdditionalMember(parent, 2), got.Ref)

	assert.Error(t, json.Unmarshal([]byte(`{"ref":"walkin_"}`), &got))
}

func TestFromAllocation(t *testing.T) {
	assert.Equal(t, Individual("ind"), FromAllocation(models.Allocation{IndividualID: "ind"}))
	assert.Equal(t, Child("kid", ""), FromAllocation(models.Allocation{ChildID: "kid"}))

	walkIn := FromAllocation(models.Allocation{RecipientName: "Sara"})
	assert.True(t, walkIn.IsWalkIn())
	assert.Equal(t, "Sara", walkIn.WalkInName)
}
