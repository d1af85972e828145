package checker

import (
	"fmt"
	"strings"
	"time"

	"github.com/VK-10-9/Joshi-card/checker/models"
	"github.com/VK-10-9/Joshi-card/internal/cardlog"
	"github.com/VK-10-9/Joshi-card/internal/expiry"
	"github.com/VK-10-9/Joshi-card/internal/pan"
	"github.com/VK-10-9/Joshi-card/internal/risk"
	"github.com/VK-10-9/Joshi-card/internal/scheme"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Service runs the validation pipeline: normalize, length, Luhn, scheme,
// CVV, expiry, mask, log, score.
type Service struct {
	cfg     *Config
	logger  *slog.Logger
	records *cardlog.Writer
	scorer  *risk.Scorer
	loc     *time.Location
	now     func() time.Time
}

func NewService(logger *slog.Logger, cfg *Config, records *cardlog.Writer, scorer *risk.Scorer) *Service {
	logger = logger.With(slog.String("app", "cardcheck"))

	if cfg == nil {
		cfg = DefaultConfig()
	}

	loc := time.UTC
	if cfg.ExpiryTZ != "" {
		l, err := time.LoadLocation(cfg.ExpiryTZ)
		if err != nil {
			logger.Info("invalid expiry timezone; using UTC", slog.String("tz", cfg.ExpiryTZ), slog.Any("err", err))
		} else {
			loc = l
		}
	}
	expiry.SetDefaultLocation(loc)
	if len(cfg.ProductYears) > 0 {
		expiry.SetProductYears(cfg.ProductYears)
	}

	if scorer == nil {
		scorer = risk.New()
	}

	return &Service{
		cfg:     cfg,
		logger:  logger,
		records: records,
		scorer:  scorer,
		loc:     loc,
		now:     time.Now,
	}
}

// SetClock pins the current-time source. Tests use this to make expiry
// classification deterministic.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Check validates one card record and appends it to the record log. The two
// user-facing failures are pan.ErrInvalidLength and pan.ErrChecksum; any
// other error is unexpected input.
func (s *Service) Check(input models.CardInput) (*models.Report, error) {
	number := pan.Normalize(input.Number)
	if err := pan.Validate(number); err != nil {
		return nil, err
	}

	sch := scheme.Detect(number)

	yymm, err := expiry.ParseCardFace(input.Expiry)
	if err != nil {
		return nil, fmt.Errorf("parsing expiry: %w", err)
	}
	status, err := expiry.Classify(yymm, s.now(), s.loc, s.cfg.WarnMonths)
	if err != nil {
		return nil, fmt.Errorf("classifying expiry: %w", err)
	}
	face, err := expiry.CardFaceFromYYMM(yymm)
	if err != nil {
		return nil, fmt.Errorf("formatting expiry: %w", err)
	}

	report := &models.Report{
		ID:           uuid.New().String(),
		Holder:       strings.TrimSpace(input.Holder),
		Masked:       pan.Mask(number),
		Scheme:       sch,
		CVVValid:     scheme.ValidCVV(sch, strings.TrimSpace(input.CVV)),
		ExpiryStatus: status,
		Expiry:       face,
		RiskScore:    s.scorer.Score(),
	}

	if s.records != nil {
		rec := cardlog.Record{
			Holder: report.Holder,
			Scheme: string(report.Scheme),
			Masked: report.Masked,
			Expiry: report.Expiry,
		}
		if err := s.records.Append(rec); err != nil {
			// The record log is best effort; the report still stands.
			s.logger.Error("appending card record", "err", err)
		} else {
			s.logger.Info("card record appended",
				slog.String("record_id", report.ID),
				slog.String("card_type", string(report.Scheme)))
		}
	}

	return report, nil
}
