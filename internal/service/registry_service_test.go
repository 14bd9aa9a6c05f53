package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/aidledger/pkg/proto"
)

func TestCreateIndividual(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	resp, err := s.Registry.CreateIndividual(ctx, staff(&pb.CreateIndividualRequest{
		FirstName:       "  Rana ",
		LastName:        "Khoury",
		IdNumber:        "123456",
		DateOfBirth:     "1985-03-02",
		District:        "North",
		AssistanceTypes: []string{"food_assistance", "food_assistance", "medical_help"},
		AdditionalMembers: []*pb.AdditionalMember{
			{Name: "Mona", Relation: "mother", DateOfBirth: "1950-01-01"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateIndividual failed: %v", err)
	}

	ind := resp.Msg
	if ind.Id == "" {
		t.Fatal("expected individual ID")
	}
	if ind.FirstName != "Rana" {
		t.Errorf("expected trimmed first name, got %q", ind.FirstName)
	}
	if ind.ListStatus != "whitelist" {
		t.Errorf("expected default list status whitelist, got %q", ind.ListStatus)
	}
	if len(ind.AssistanceTypes) != 2 {
		t.Errorf("expected deduplicated assistance types, got %v", ind.AssistanceTypes)
	}
	if ind.CreatedBy != staffID {
		t.Errorf("expected createdBy %q, got %q", staffID, ind.CreatedBy)
	}

	_, err = s.Registry.CreateIndividual(ctx, staff(&pb.CreateIndividualRequest{
		FirstName: "Other", LastName: "Person", IdNumber: "123456", District: "South",
	}))
	assertCode(t, err, connect.CodeAlreadyExists)
}

func TestCreateIndividualValidation(t *testing.T) {
	s := setupTestServer(t)

	valid := func() *pb.CreateIndividualRequest {
		return &pb.CreateIndividualRequest{FirstName: "Rana", LastName: "Khoury", IdNumber: "1", District: "North"}
	}
	tests := []struct {
		name   string
		mutate func(*pb.CreateIndividualRequest)
	}{
		{"missing name", func(r *pb.CreateIndividualRequest) { r.FirstName = "" }},
		{"missing id number", func(r *pb.CreateIndividualRequest) { r.IdNumber = " " }},
		{"missing district", func(r *pb.CreateIndividualRequest) { r.District = "" }},
		{"bad date of birth", func(r *pb.CreateIndividualRequest) { r.DateOfBirth = "2.3.1985" }},
		{"bad list status", func(r *pb.CreateIndividualRequest) { r.ListStatus = "greylist" }},
		{"bad assistance type", func(r *pb.CreateIndividualRequest) { r.AssistanceTypes = []string{"rent"} }},
		{"unnamed additional member", func(r *pb.CreateIndividualRequest) {
			r.AdditionalMembers = []*pb.AdditionalMember{{Relation: "son"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := s.Registry.CreateIndividual(context.Background(), staff(req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestListIndividuals(t *testing.T) {
	s := setupTestServer(t)
	s.createIndividual(t, "Rana", "Khoury", "North", "food_assistance")
	s.createIndividual(t, "Omar", "Haddad", "North")
	s.createIndividual(t, "Renée", "Aziz", "South", "food_assistance")
	ctx := context.Background()

	tests := []struct {
		name string
		req  *pb.ListIndividualsRequest
		want int
	}{
		{"all", &pb.ListIndividualsRequest{}, 3},
		{"district", &pb.ListIndividualsRequest{District: "North"}, 2},
		{"assistance type", &pb.ListIndividualsRequest{AssistanceType: "food_assistance"}, 2},
		{"search ignores accents", &pb.ListIndividualsRequest{Search: "renee"}, 1},
		{"search every word", &pb.ListIndividualsRequest{Search: "rana khoury"}, 1},
		{"search no match", &pb.ListIndividualsRequest{Search: "zzz"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Registry.ListIndividuals(ctx, staff(tt.req))
			if err != nil {
				t.Fatalf("ListIndividuals failed: %v", err)
			}
			if len(resp.Msg.Individuals) != tt.want {
				t.Errorf("expected %d individuals, got %d", tt.want, len(resp.Msg.Individuals))
			}
		})
	}
}

func TestFamilies(t *testing.T) {
	s := setupTestServer(t)
	family, _, member := s.household(t)
	ctx := context.Background()

	if family.Status != "green" {
		t.Errorf("expected default status green, got %q", family.Status)
	}

	got, err := s.Registry.GetFamily(ctx, staff(&pb.GetFamilyRequest{Id: family.Id}))
	if err != nil {
		t.Fatalf("GetFamily failed: %v", err)
	}
	roles := make(map[string]string)
	for _, m := range got.Msg.Members {
		roles[m.FirstName] = m.Role
	}
	if roles["Rana"] != "parent" || roles["Omar"] != "member" || roles["Lina"] != "child" {
		t.Errorf("unexpected member roles %v", roles)
	}

	list, err := s.Registry.ListFamilies(ctx, staff(&pb.ListFamiliesRequest{Search: "khou"}))
	if err != nil {
		t.Fatalf("ListFamilies failed: %v", err)
	}
	if len(list.Msg.Families) != 1 {
		t.Errorf("expected 1 family, got %d", len(list.Msg.Families))
	}

	members, err := s.Registry.GetFamilyMembersForDistribution(ctx, staff(&pb.GetFamilyMembersForDistributionRequest{FamilyId: family.Id, Mode: "all"}))
	if err != nil {
		t.Fatalf("GetFamilyMembersForDistribution failed: %v", err)
	}
	types := make(map[string]int)
	for _, r := range members.Msg.Recipients {
		types[r.Type]++
		if r.Type == "Additional member" && (r.ParentName != "Rana Khoury" || r.Relation != "mother") {
			t.Errorf("unexpected additional member %+v", r)
		}
	}
	if types["Individual"] != 2 || types["Child"] != 1 || types["Additional member"] != 1 {
		t.Errorf("unexpected recipient types %v", types)
	}

	_, err = s.Registry.CreateFamily(ctx, staff(&pb.CreateFamilyRequest{
		Name:    "Bad",
		Members: []*pb.MemberRole{{IndividualId: member.Id, Role: "child"}},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestAddChildWithoutFamily(t *testing.T) {
	s := setupTestServer(t)
	loner := s.createIndividual(t, "Sami", "Aziz", "South")

	_, err := s.Registry.AddChild(context.Background(), staff(&pb.AddChildRequest{ParentId: loner.Id, FirstName: "Yara"}))
	assertCode(t, err, connect.CodeFailedPrecondition)
}

func TestResolveRecipient(t *testing.T) {
	s := setupTestServer(t)
	_, parent, _ := s.household(t)
	ctx := context.Background()

	tests := []struct {
		ref     string
		typ     string
		name    string
		unknown bool
	}{
		{parent.Id, "Individual", "Rana Khoury", false},
		{"additional_" + parent.Id + "_0", "Additional member", "Mona", false},
		{"additional_" + parent.Id + "_5", "Unknown", "Unknown", true},
		{"walkin_1700000000000", "Walk-in", "Walk-in", false},
		{"00000000-0000-0000-0000-000000000000", "Unknown", "Unknown", true},
		{"additional_garbage", "Unknown", "Unknown", true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			resp, err := s.Registry.ResolveRecipient(ctx, staff(&pb.ResolveRecipientRequest{Ref: tt.ref}))
			if err != nil {
				t.Fatalf("ResolveRecipient failed: %v", err)
			}
			r := resp.Msg
			if r.Type != tt.typ || r.Name != tt.name || r.Unknown != tt.unknown {
				t.Errorf("expected %s/%s/%v, got %s/%s/%v", tt.typ, tt.name, tt.unknown, r.Type, r.Name, r.Unknown)
			}
		})
	}
}

func TestAddAdditionalMember(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")
	ctx := context.Background()

	resp, err := s.Registry.AddAdditionalMember(ctx, staff(&pb.AddAdditionalMemberRequest{
		IndividualId: rana.Id,
		Member:       &pb.AdditionalMember{Name: " Mona ", Relation: "mother"},
	}))
	if err != nil {
		t.Fatalf("AddAdditionalMember failed: %v", err)
	}
	if resp.Msg.Index != 0 || resp.Msg.Ref != "additional_"+rana.Id+"_0" {
		t.Errorf("unexpected response %+v", resp.Msg)
	}

	_, err = s.Registry.AddAdditionalMember(ctx, staff(&pb.AddAdditionalMemberRequest{IndividualId: rana.Id}))
	assertCode(t, err, connect.CodeInvalidArgument)
}
