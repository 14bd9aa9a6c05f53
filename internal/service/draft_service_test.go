package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/aidledger/internal/models"
	pb "github.com/mmynk/aidledger/pkg/proto"
)

// household registers a family with a parent who has one additional member
// and one child, plus a second registered member.
func (s *testServer) household(t *testing.T) (family *pb.Family, parent, member *pb.Individual) {
	t.Helper()
	ctx := context.Background()

	parent = s.createIndividual(t, "Rana", "Khoury", "North", "food_assistance")
	member = s.createIndividual(t, "Omar", "Khoury", "North")

	resp, err := s.Registry.CreateFamily(ctx, staff(&pb.CreateFamilyRequest{
		Name:     "Khoury",
		District: "North",
		Members: []*pb.MemberRole{
			{IndividualId: parent.Id, Role: "parent"},
			{IndividualId: member.Id, Role: "member"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}
	if _, err := s.Registry.AddAdditionalMember(ctx, staff(&pb.AddAdditionalMemberRequest{
		IndividualId: parent.Id,
		Member:       &pb.AdditionalMember{Name: "Mona", Relation: "mother"},
	})); err != nil {
		t.Fatalf("AddAdditionalMember failed: %v", err)
	}
	if _, err := s.Registry.AddChild(ctx, staff(&pb.AddChildRequest{
		ParentId:    parent.Id,
		FirstName:   "Lina",
		LastName:    "Khoury",
		DateOfBirth: "2015-06-01",
	})); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	return resp.Msg, parent, member
}

func (s *testServer) newDraft(t *testing.T) string {
	t.Helper()
	resp, err := s.Drafts.CreateDraft(context.Background(), staff(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("CreateDraft failed: %v", err)
	}
	return resp.Msg.Id
}

func kinds(d *pb.Draft) map[string]int {
	out := make(map[string]int)
	for _, e := range d.Entries {
		out[e.Kind]++
	}
	return out
}

func TestDraftAddFamilyModes(t *testing.T) {
	s := setupTestServer(t)
	family, parent, _ := s.household(t)
	ctx := context.Background()

	heads := s.newDraft(t)
	resp, err := s.Drafts.AddFamily(ctx, staff(&pb.AddFamilyRequest{DraftId: heads, FamilyId: family.Id, Mode: "heads"}))
	if err != nil {
		t.Fatalf("AddFamily heads failed: %v", err)
	}
	if resp.Msg.Added != 1 || resp.Msg.Entries[0].Ref != parent.Id {
		t.Errorf("heads mode should add only the parent, got %+v", resp.Msg.Entries)
	}

	all := s.newDraft(t)
	resp, err = s.Drafts.AddFamily(ctx, staff(&pb.AddFamilyRequest{DraftId: all, FamilyId: family.Id, Mode: "all", Quantity: 2}))
	if err != nil {
		t.Fatalf("AddFamily all failed: %v", err)
	}
	got := kinds(resp.Msg)
	if got["individual"] != 2 || got["child"] != 1 || got["additional_member"] != 1 {
		t.Errorf("unexpected entry kinds: %v", got)
	}
	if resp.Msg.TotalQuantity != 8 {
		t.Errorf("expected total quantity 8, got %d", resp.Msg.TotalQuantity)
	}

	// Adding the family again adds nothing new.
	resp, err = s.Drafts.AddFamily(ctx, staff(&pb.AddFamilyRequest{DraftId: all, FamilyId: family.Id, Mode: "all"}))
	if err != nil {
		t.Fatalf("AddFamily repeat failed: %v", err)
	}
	if resp.Msg.Added != 0 || len(resp.Msg.Entries) != 4 {
		t.Errorf("expected no new entries, added %d of %d", resp.Msg.Added, len(resp.Msg.Entries))
	}

	_, err = s.Drafts.AddFamily(ctx, staff(&pb.AddFamilyRequest{DraftId: all, FamilyId: family.Id, Mode: "cousins"}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = s.Drafts.AddFamily(ctx, staff(&pb.AddFamilyRequest{DraftId: all, FamilyId: "00000000-0000-0000-0000-000000000000"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestDraftFilters(t *testing.T) {
	s := setupTestServer(t)
	s.createIndividual(t, "Rana", "Khoury", "North", "food_assistance")
	s.createIndividual(t, "Omar", "Haddad", "North")
	s.createIndividual(t, "Sami", "Aziz", "South", "food_assistance", "medical_help")
	ctx := context.Background()
	id := s.newDraft(t)

	resp, err := s.Drafts.AddByDistrict(ctx, staff(&pb.AddByDistrictRequest{DraftId: id, District: "North"}))
	if err != nil {
		t.Fatalf("AddByDistrict failed: %v", err)
	}
	if resp.Msg.Added != 2 {
		t.Errorf("expected 2 added by district, got %d", resp.Msg.Added)
	}

	resp, err = s.Drafts.AddByAssistanceType(ctx, staff(&pb.AddByAssistanceTypeRequest{DraftId: id, AssistanceType: "food_assistance"}))
	if err != nil {
		t.Fatalf("AddByAssistanceType failed: %v", err)
	}
	if resp.Msg.Added != 1 || len(resp.Msg.Entries) != 3 {
		t.Errorf("expected Sami added once, got added=%d entries=%d", resp.Msg.Added, len(resp.Msg.Entries))
	}

	_, err = s.Drafts.AddByAssistanceType(ctx, staff(&pb.AddByAssistanceTypeRequest{DraftId: id, AssistanceType: "rent"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestDraftEditing(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()
	id := s.newDraft(t)

	resp, err := s.Drafts.AddRecipient(ctx, staff(&pb.AddRecipientRequest{DraftId: id, Ref: rana.Id}))
	if err != nil {
		t.Fatalf("AddRecipient failed: %v", err)
	}
	e := resp.Msg.Entries[0]
	if e.Kind != "individual" || e.Name != "Rana Khoury" || e.Quantity != 1 {
		t.Errorf("unexpected entry %+v", e)
	}

	_, err = s.Drafts.AddRecipient(ctx, staff(&pb.AddRecipientRequest{DraftId: id, Ref: rana.Id}))
	assertCode(t, err, connect.CodeAlreadyExists)

	_, err = s.Drafts.AddRecipient(ctx, staff(&pb.AddRecipientRequest{DraftId: id, Ref: "00000000-0000-0000-0000-000000000000"}))
	assertCode(t, err, connect.CodeNotFound)

	notes := "diabetic"
	resp, err = s.Drafts.SetQuantity(ctx, staff(&pb.SetQuantityRequest{DraftId: id, Ref: rana.Id, Quantity: 3, Notes: &notes}))
	if err != nil {
		t.Fatalf("SetQuantity failed: %v", err)
	}
	if resp.Msg.Entries[0].Quantity != 3 || resp.Msg.Entries[0].Notes != "diabetic" {
		t.Errorf("unexpected entry after SetQuantity: %+v", resp.Msg.Entries[0])
	}

	_, err = s.Drafts.SetQuantity(ctx, staff(&pb.SetQuantityRequest{DraftId: id, Ref: rana.Id, Quantity: 0}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err = s.Drafts.AddWalkIn(ctx, staff(&pb.AddWalkInRequest{DraftId: id}))
	if err != nil {
		t.Fatalf("AddWalkIn failed: %v", err)
	}
	if len(resp.Msg.Entries) != 2 || resp.Msg.Entries[1].Name != "Walk-in" {
		t.Fatalf("expected a default walk-in entry, got %+v", resp.Msg.Entries)
	}

	resp, err = s.Drafts.RemoveRecipient(ctx, staff(&pb.RemoveRecipientRequest{DraftId: id, Ref: resp.Msg.Entries[1].Ref}))
	if err != nil {
		t.Fatalf("RemoveRecipient failed: %v", err)
	}
	if len(resp.Msg.Entries) != 1 {
		t.Errorf("expected 1 entry after removal, got %d", len(resp.Msg.Entries))
	}

	_, err = s.Drafts.RemoveRecipient(ctx, staff(&pb.RemoveRecipientRequest{DraftId: id, Ref: "walkin_1"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestDraftSelection(t *testing.T) {
	s := setupTestServer(t)
	family, _, member := s.household(t)
	ctx := context.Background()
	id := s.newDraft(t)

	if _, err := s.Drafts.AddFamily(ctx, staff(&pb.AddFamilyRequest{DraftId: id, FamilyId: family.Id, Mode: "all"})); err != nil {
		t.Fatalf("AddFamily failed: %v", err)
	}

	resp, err := s.Drafts.SelectRecipients(ctx, staff(&pb.SelectRecipientsRequest{DraftId: id, Action: "children"}))
	if err != nil {
		t.Fatalf("SelectRecipients children failed: %v", err)
	}
	if n := countSelected(resp.Msg); n != 1 {
		t.Fatalf("expected 1 child selected, got %d", n)
	}

	// A single selection is too small for bulk removal.
	_, err = s.Drafts.RemoveSelected(ctx, staff(&pb.DraftRequest{DraftId: id}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	if _, err := s.Drafts.SelectRecipients(ctx, staff(&pb.SelectRecipientsRequest{DraftId: id, Action: "add", Refs: []string{member.Id}})); err != nil {
		t.Fatalf("SelectRecipients add failed: %v", err)
	}
	resp, err = s.Drafts.RemoveSelected(ctx, staff(&pb.DraftRequest{DraftId: id}))
	if err != nil {
		t.Fatalf("RemoveSelected failed: %v", err)
	}
	got := kinds(resp.Msg)
	if got["individual"] != 1 || got["additional_member"] != 1 || got["child"] != 0 {
		t.Errorf("unexpected entries after bulk removal: %v", got)
	}
	if countSelected(resp.Msg) != 0 {
		t.Error("selection should be cleared after bulk removal")
	}

	_, err = s.Drafts.SelectRecipients(ctx, staff(&pb.SelectRecipientsRequest{DraftId: id, Action: "add", Refs: []string{"walkin_404"}}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = s.Drafts.SelectRecipients(ctx, staff(&pb.SelectRecipientsRequest{DraftId: id, Action: "invert"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func countSelected(d *pb.Draft) int {
	n := 0
	for _, e := range d.Entries {
		if e.Selected {
			n++
		}
	}
	return n
}

func TestSubmitDraft(t *testing.T) {
	s := setupTestServer(t)
	family, parent, member := s.household(t)
	ctx := context.Background()
	id := s.newDraft(t)

	if _, err := s.Drafts.AddFamily(ctx, staff(&pb.AddFamilyRequest{DraftId: id, FamilyId: family.Id, Mode: "all"})); err != nil {
		t.Fatalf("AddFamily failed: %v", err)
	}
	for _, ref := range []string{member.Id} {
		if _, err := s.Drafts.RemoveRecipient(ctx, staff(&pb.RemoveRecipientRequest{DraftId: id, Ref: ref})); err != nil {
			t.Fatalf("RemoveRecipient failed: %v", err)
		}
	}
	if _, err := s.Drafts.AddWalkIn(ctx, staff(&pb.AddWalkInRequest{DraftId: id, Name: "Sara"})); err != nil {
		t.Fatalf("AddWalkIn failed: %v", err)
	}

	// A failed submission keeps the draft.
	bad := foodInput("90")
	bad.Description = ""
	_, err := s.Drafts.SubmitDraft(ctx, staff(&pb.SubmitDraftRequest{DraftId: id, Distribution: bad}))
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err := s.Drafts.SubmitDraft(ctx, staff(&pb.SubmitDraftRequest{DraftId: id, Distribution: foodInput("120")}))
	if err != nil {
		t.Fatalf("SubmitDraft failed: %v", err)
	}

	// Parent (with bundled additional member), child, walk-in.
	d := resp.Msg
	if len(d.Recipients) != 3 {
		t.Fatalf("expected 3 allocation lines, got %d", len(d.Recipients))
	}
	if d.Recipients[0].Ref != parent.Id || d.Recipients[0].Quantity != 2 {
		t.Errorf("expected parent line with quantity 2, got %+v", d.Recipients[0])
	}
	if d.Recipients[0].Value != "60.00" {
		t.Errorf("expected parent value 60.00, got %s", d.Recipients[0].Value)
	}
	if d.Recipients[2].Name != "Sara" || d.Recipients[2].Type != "Walk-in" {
		t.Errorf("unexpected walk-in line %+v", d.Recipients[2])
	}

	_, err = s.Drafts.GetDraft(ctx, staff(&pb.DraftRequest{DraftId: id}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestDraftIsPrivateToOwner(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	id := s.newDraft(t)

	_, err := s.Drafts.GetDraft(ctx, as("someone-else", models.RoleUser, &pb.DraftRequest{DraftId: id}))
	assertCode(t, err, connect.CodeNotFound)

	if _, err := s.Drafts.DiscardDraft(ctx, staff(&pb.DraftRequest{DraftId: id})); err != nil {
		t.Fatalf("DiscardDraft failed: %v", err)
	}
	_, err = s.Drafts.DiscardDraft(ctx, staff(&pb.DraftRequest{DraftId: id}))
	assertCode(t, err, connect.CodeNotFound)
}
