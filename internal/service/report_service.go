package service

import (
	"context"
	"log/slog"
	"sort"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/aidledger/internal/calculator"
	"github.com/mmynk/aidledger/internal/models"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
	pb "github.com/mmynk/aidledger/pkg/proto"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

const defaultTopRecipients = 10

// ReportService implements the Connect ReportService.
type ReportService struct {
	protoconnect.UnimplementedReportServiceHandler
	registry      storage.RegistryStore
	distributions storage.DistributionStore
	resolver      *recipient.Resolver
	logger        *slog.Logger
}

// NewReportService creates a ReportService.
func NewReportService(registry storage.RegistryStore, distributions storage.DistributionStore, resolver *recipient.Resolver, logger *slog.Logger) *ReportService {
	return &ReportService{registry: registry, distributions: distributions, resolver: resolver, logger: logger}
}

// GetSummary totals the distributions in a date range.
func (s *ReportService) GetSummary(ctx context.Context, req *connect.Request[pb.GetSummaryRequest]) (*connect.Response[pb.Summary], error) {
	filter, err := distributionFilter(req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, err
	}
	distributions, err := s.distributions.ListDistributions(ctx, filter)
	if err != nil {
		return nil, toConnectError(s.logger, "GetSummary", err)
	}

	sum := calculator.Summarize(distributions)
	resp := &pb.Summary{
		Distributions: int32(sum.Distributions),
		Quantity:      int32(sum.Quantity),
		Value:         formatMoney(sum.Value),
		ByAidType:     make([]*pb.Bucket, 0, len(sum.ByAidType)),
		ByStatus:      make([]*pb.Bucket, 0, len(sum.ByStatus)),
		Recipients:    int32(sum.Recipients),
		WalkIns:       int32(sum.WalkIns),
	}
	for t, totals := range sum.ByAidType {
		resp.ByAidType = append(resp.ByAidType, bucket(string(t), totals))
	}
	for st, totals := range sum.ByStatus {
		resp.ByStatus = append(resp.ByStatus, bucket(string(st), totals))
	}
	sortBuckets(resp.ByAidType, sum.ByAidType)
	sortBuckets(resp.ByStatus, sum.ByStatus)

	resp.TopRecipients = s.topRecipients(ctx, distributions, int(req.Msg.Top))

	return connect.NewResponse(resp), nil
}

// GetRecipientHistory lists every allocation an individual received, newest
// distribution first.
func (s *ReportService) GetRecipientHistory(ctx context.Context, req *connect.Request[pb.GetRecipientHistoryRequest]) (*connect.Response[pb.RecipientHistory], error) {
	if err := requireID("individualId", req.Msg.IndividualId); err != nil {
		return nil, err
	}
	ind, err := s.registry.GetIndividual(ctx, req.Msg.IndividualId)
	if err != nil {
		return nil, toConnectError(s.logger, "GetRecipientHistory", err)
	}
	allocations, err := s.distributions.ListAllocationsByIndividual(ctx, ind.ID)
	if err != nil {
		return nil, toConnectError(s.logger, "GetRecipientHistory", err)
	}

	resp := &pb.RecipientHistory{
		IndividualId: ind.ID,
		Name:         ind.FullName(),
		Entries:      make([]*pb.HistoryEntry, 0, len(allocations)),
	}
	total := decimal.Zero
	headers := make(map[string]*models.Distribution)
	for _, a := range allocations {
		d, ok := headers[a.DistributionID]
		if !ok {
			d, err = s.distributions.GetDistribution(ctx, a.DistributionID)
			if err != nil {
				return nil, toConnectError(s.logger, "GetRecipientHistory", err)
			}
			headers[a.DistributionID] = d
		}
		resp.Entries = append(resp.Entries, &pb.HistoryEntry{
			DistributionId: d.ID,
			Date:           formatDate(d.Date),
			AidType:        string(d.AidType),
			Description:    d.Description,
			Status:         string(d.Status),
			Quantity:       int32(a.Quantity),
			Value:          formatMoney(a.Value),
			Notes:          a.Notes,
		})
		if d.Status != models.StatusCancelled {
			resp.Quantity += int32(a.Quantity)
			total = total.Add(a.Value)
		}
	}
	resp.Value = formatMoney(total)
	sort.SliceStable(resp.Entries, func(i, j int) bool {
		return resp.Entries[i].Date > resp.Entries[j].Date
	})

	return connect.NewResponse(resp), nil
}

// topRecipients ranks registered recipients of non-cancelled distributions
// by value received. Recipients deleted from the registry are reported with
// the resolver's placeholder name.
func (s *ReportService) topRecipients(ctx context.Context, distributions []*models.Distribution, limit int) []*pb.RecipientTotal {
	if limit <= 0 {
		limit = defaultTopRecipients
	}
	var allocations []models.Allocation
	for _, d := range distributions {
		if d.Status != models.StatusCancelled {
			allocations = append(allocations, d.Recipients...)
		}
	}
	totals := calculator.RecipientTotals(allocations)
	if len(totals) > limit {
		totals = totals[:limit]
	}

	refs := make([]recipient.Ref, len(totals))
	for i, rt := range totals {
		refs[i] = recipient.FromAllocation(models.Allocation{IndividualID: rt.IndividualID, ChildID: rt.ChildID})
	}
	resolved := s.resolver.ResolveAll(ctx, refs)

	out := make([]*pb.RecipientTotal, len(totals))
	for i, rt := range totals {
		out[i] = &pb.RecipientTotal{
			Ref:      refs[i].String(),
			Name:     resolved[i].Name,
			Type:     resolved[i].TypeLabel(),
			Count:    int32(rt.Count),
			Quantity: int32(rt.Quantity),
			Value:    formatMoney(rt.Value),
		}
	}
	return out
}

func bucket(key string, t calculator.Totals) *pb.Bucket {
	return &pb.Bucket{Key: key, Count: int32(t.Count), Quantity: int32(t.Quantity), Value: formatMoney(t.Value)}
}

// sortBuckets orders buckets by value, largest first, then by key. Values
// are compared from totals rather than their wire strings.
func sortBuckets[K ~string](buckets []*pb.Bucket, totals map[K]calculator.Totals) {
	sort.Slice(buckets, func(i, j int) bool {
		vi, vj := totals[K(buckets[i].Key)].Value, totals[K(buckets[j].Key)].Value
		if c := vi.Cmp(vj); c != 0 {
			return c > 0
		}
		return buckets[i].Key < buckets[j].Key
	})
}
