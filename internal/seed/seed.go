package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/auth"
	"github.com/mmynk/aidledger/internal/distribution"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
)

// Summary counts the records a seed run created.
type Summary struct {
	Users         int
	SkippedUsers  int
	Individuals   int
	Families      int
	Children      int
	Distributions int
}

// Seeder applies fixtures to a store.
type Seeder struct {
	store   storage.Store
	auth    auth.Authenticator
	builder *distribution.Builder
	logger  *slog.Logger
}

// New creates a Seeder.
func New(store storage.Store, authenticator auth.Authenticator, builder *distribution.Builder, logger *slog.Logger) *Seeder {
	return &Seeder{store: store, auth: authenticator, builder: builder, logger: logger}
}

// keys maps fixture-local keys to stored IDs.
type keys struct {
	users       map[string]string
	individuals map[string]string
	children    map[string]*models.Child
}

// Apply creates every record of fx in dependency order. Users whose email
// is already registered are skipped; any other failure stops the run.
func (s *Seeder) Apply(ctx context.Context, fx *Fixture) (Summary, error) {
	var sum Summary
	k := keys{
		users:       make(map[string]string),
		individuals: make(map[string]string),
		children:    make(map[string]*models.Child),
	}

	for i, u := range fx.Users {
		if err := s.user(ctx, u, k, &sum); err != nil {
			return sum, fmt.Errorf("users[%d]: %w", i, err)
		}
	}
	for i, ind := range fx.Individuals {
		if err := s.individual(ctx, ind, k); err != nil {
			return sum, fmt.Errorf("individuals[%d]: %w", i, err)
		}
		sum.Individuals++
	}
	for i, f := range fx.Families {
		if err := s.family(ctx, f, k); err != nil {
			return sum, fmt.Errorf("families[%d]: %w", i, err)
		}
		sum.Families++
	}
	for i, c := range fx.Children {
		if err := s.child(ctx, c, k); err != nil {
			return sum, fmt.Errorf("children[%d]: %w", i, err)
		}
		sum.Children++
	}
	for i, d := range fx.Distributions {
		if err := s.distribution(ctx, i, d, k); err != nil {
			return sum, fmt.Errorf("distributions[%d]: %w", i, err)
		}
		sum.Distributions++
	}

	s.logger.Info("Seed applied",
		"users", sum.Users,
		"skipped_users", sum.SkippedUsers,
		"individuals", sum.Individuals,
		"families", sum.Families,
		"children", sum.Children,
		"distributions", sum.Distributions,
	)
	return sum, nil
}

func (s *Seeder) user(ctx context.Context, u User, k keys, sum *Summary) error {
	role := models.Role(u.Role)
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return fmt.Errorf("unknown role %q", u.Role)
	}

	user, err := s.auth.Register(ctx, u.Email, u.DisplayName, u.Password, role)
	if errors.Is(err, auth.ErrEmailExists) {
		existing, err := s.store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(u.Email)))
		if err != nil {
			return err
		}
		s.logger.Debug("User already exists", "email", u.Email)
		k.users[strings.ToLower(u.Email)] = existing.ID
		sum.SkippedUsers++
		return nil
	}
	if err != nil {
		return err
	}
	k.users[strings.ToLower(u.Email)] = user.ID
	sum.Users++
	return nil
}

func (s *Seeder) individual(ctx context.Context, in Individual, k keys) error {
	if in.Key == "" {
		return errors.New("key is required")
	}
	if _, dup := k.individuals[in.Key]; dup {
		return fmt.Errorf("duplicate key %q", in.Key)
	}
	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return err
	}

	status := models.ListStatus(in.ListStatus)
	if status == "" {
		status = models.ListWhitelist
	}
	if !status.Valid() {
		return fmt.Errorf("unknown list status %q", in.ListStatus)
	}
	types := make([]models.AssistanceType, 0, len(in.AssistanceTypes))
	for _, t := range in.AssistanceTypes {
		at := models.AssistanceType(t)
		if !at.Valid() {
			return fmt.Errorf("unknown assistance type %q", t)
		}
		types = append(types, at)
	}
	members := make([]models.AdditionalMember, len(in.AdditionalMembers))
	for i, m := range in.AdditionalMembers {
		members[i] = models.AdditionalMember(m)
	}

	ind := &models.Individual{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		IDNumber:          in.IDNumber,
		DateOfBirth:       dob,
		Gender:            in.Gender,
		Phone:             in.Phone,
		District:          in.District,
		Address:           in.Address,
		ListStatus:        status,
		AssistanceTypes:   types,
		AdditionalMembers: members,
	}
	if err := s.store.CreateIndividual(ctx, ind); err != nil {
		return err
	}
	k.individuals[in.Key] = ind.ID
	return nil
}

func (s *Seeder) family(ctx context.Context, in Family, k keys) error {
	status := models.FamilyStatus(in.Status)
	if status == "" {
		status = models.FamilyGreen
	}
	if !status.Valid() {
		return fmt.Errorf("unknown family status %q", in.Status)
	}

	f := &models.Family{
		Name:     in.Name,
		Status:   status,
		District: in.District,
		Phone:    in.Phone,
		Address:  in.Address,
		Roles:    make(map[string]models.FamilyRole, len(in.Members)),
	}
	for _, m := range in.Members {
		id, err := k.individual(m.Individual)
		if err != nil {
			return err
		}
		role := models.FamilyRole(m.Role)
		if role == "" {
			role = models.RoleMember
		}
		if role != models.RoleParent && role != models.RoleMember {
			return fmt.Errorf("member %q: unknown role %q", m.Individual, m.Role)
		}
		f.Roles[id] = role
	}
	if in.PrimaryContact != "" {
		id, err := k.individual(in.PrimaryContact)
		if err != nil {
			return err
		}
		f.PrimaryContactID = id
	}
	return s.store.CreateFamily(ctx, f)
}

func (s *Seeder) child(ctx context.Context, in Child, k keys) error {
	if in.Key == "" {
		return errors.New("key is required")
	}
	parentID, err := k.individual(in.Parent)
	if err != nil {
		return err
	}
	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return err
	}
	c := &models.Child{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: dob,
		Gender:      in.Gender,
		SchoolStage: in.SchoolStage,
		ParentID:    parentID,
	}
	if err := s.store.AddChildWithFamily(ctx, c); err != nil {
		return err
	}
	k.children[in.Key] = c
	return nil
}

func (s *Seeder) distribution(ctx context.Context, n int, in Distribution, k keys) error {
	date, err := parseDate(in.Date)
	if err != nil {
		return err
	}
	if date.IsZero() {
		return errors.New("date is required")
	}

	req := distribution.Request{
		Date:         date,
		AidType:      models.AidType(in.AidType),
		Description:  in.Description,
		Status:       models.DistributionStatus(in.Status),
		Quantity:     in.Quantity,
		Value:        nullDecimal(in.Value),
		ValuePerUnit: nullDecimal(in.ValuePerUnit),
		// Historical records may already be completed or cancelled.
		ForUpdate: true,
	}
	if in.CreatedBy != "" {
		id, ok := k.users[strings.ToLower(in.CreatedBy)]
		if !ok {
			return fmt.Errorf("unknown user %q", in.CreatedBy)
		}
		req.CreatedBy = id
	}

	for i, r := range in.Recipients {
		ref, err := k.ref(n, i, r)
		if err != nil {
			return fmt.Errorf("recipients[%d]: %w", i, err)
		}
		qty := r.Quantity
		if qty == 0 {
			qty = 1
		}
		req.Recipients = append(req.Recipients, distribution.RecipientInput{
			Ref:      ref,
			Name:     r.WalkIn,
			Quantity: qty,
			Notes:    r.Notes,
		})
	}

	res, err := s.builder.Build(ctx, req)
	if err != nil {
		return err
	}
	return s.store.CreateDistributionTransaction(ctx, res.Distribution)
}

func (k keys) individual(key string) (string, error) {
	id, ok := k.individuals[key]
	if !ok {
		return "", fmt.Errorf("unknown individual %q", key)
	}
	return id, nil
}

func (k keys) ref(dist, idx int, r Recipient) (recipient.Ref, error) {
	set := 0
	for _, v := range []string{r.Individual, r.Child, r.AdditionalOf, r.WalkIn} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return recipient.Ref{}, errors.New("exactly one of individual, child, additional_of and walk_in must be set")
	}

	switch {
	case r.Individual != "":
		id, err := k.individual(r.Individual)
		if err != nil {
			return recipient.Ref{}, err
		}
		return recipient.Individual(id), nil
	case r.Child != "":
		c, ok := k.children[r.Child]
		if !ok {
			return recipient.Ref{}, fmt.Errorf("unknown child %q", r.Child)
		}
		return recipient.Child(c.ID, c.FamilyID), nil
	case r.AdditionalOf != "":
		id, err := k.individual(r.AdditionalOf)
		if err != nil {
			return recipient.Ref{}, err
		}
		return recipient.AdditionalMember(id, r.Index), nil
	}
	return recipient.WalkIn("seed"+strconv.Itoa(dist)+"x"+strconv.Itoa(idx), r.WalkIn), nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
