package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	coredb "stock-api/core/database"
	"stock-api/core/storage"
	"stock-api/feature/database/models"
	"stock-api/feature/database/strategy"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotPrefix is the object prefix of archived indicator rankings.
const SnapshotPrefix = "indicators/"

// SnapshotLayout names snapshot objects. The fixed-width fraction keeps
// lexical order chronological.
const SnapshotLayout = "20060102T150405.000000Z"

var (
	// ErrUnavailable is returned when no database is configured.
	ErrUnavailable = errors.New("database unavailable")
	// ErrStorageUnavailable is returned when snapshots are disabled.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrNotFound is returned for unknown records.
	ErrNotFound = errors.New("not found")
	// ErrInvalid wraps rejected input.
	ErrInvalid = errors.New("invalid input")
)

// Service holds the database feature's data access and snapshot logic.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new database service. db and client may be nil; the
// operations that need them then fail with ErrUnavailable or
// ErrStorageUnavailable.
func NewService(db *gorm.DB, client storage.Client, bucket, region string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
		now:    time.Now,
	}
}

// Migrate creates or updates the feature's tables.
func (s *Service) Migrate() error {
	if s.db == nil {
		return ErrUnavailable
	}
	if err := s.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// HealthReport describes the state of the feature's dependencies.
type HealthReport struct {
	Database string `json:"database"`
	Storage  string `json:"storage"`
}

// Healthy reports whether the database answers and storage is not failing.
func (r HealthReport) Healthy() bool {
	return r.Database == "ok" && r.Storage != "error"
}

// Health pings the database and checks the snapshot bucket.
func (s *Service) Health(ctx context.Context) HealthReport {
	report := HealthReport{Database: "unavailable", Storage: "disabled"}

	if s.db != nil {
		report.Database = "ok"
		if err := coredb.Ping(s.db, 5*time.Second); err != nil {
			s.logger.Warn("Database ping failed", zap.Error(err))
			report.Database = "error"
		}
	}

	if s.client != nil {
		report.Storage = "ok"
		exists, err := s.client.BucketExists(ctx, s.bucket)
		switch {
		case err != nil:
			s.logger.Warn("Bucket check failed", zap.String("bucket", s.bucket), zap.Error(err))
			report.Storage = "error"
		case !exists:
			report.Storage = "missing bucket"
		}
	}

	return report
}

// ListFundamentals returns every fundamental ordered by ticker.
func (s *Service) ListFundamentals(ctx context.Context) ([]models.Fundamental, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	fundamentals := []models.Fundamental{}
	if err := s.db.WithContext(ctx).Order("ticker").Find(&fundamentals).Error; err != nil {
		return nil, fmt.Errorf("failed to list fundamentals: %w", err)
	}
	return fundamentals, nil
}

// GetFundamental returns the fundamental of one ticker.
func (s *Service) GetFundamental(ctx context.Context, ticker string) (*models.Fundamental, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	var f models.Fundamental
	err := s.db.WithContext(ctx).Where("ticker = ?", normalizeTicker(ticker)).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fundamental %s: %w", ticker, err)
	}
	return &f, nil
}

// UpsertFundamentals inserts or overwrites fundamentals by ticker.
func (s *Service) UpsertFundamentals(ctx context.Context, fundamentals []models.Fundamental) (int, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}
	if len(fundamentals) == 0 {
		return 0, nil
	}
	for i := range fundamentals {
		fundamentals[i].Ticker = normalizeTicker(fundamentals[i].Ticker)
		if fundamentals[i].Ticker == "" {
			return 0, fmt.Errorf("%w: fundamental %d has no ticker", ErrInvalid, i)
		}
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&fundamentals).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert fundamentals: %w", err)
	}
	return len(fundamentals), nil
}

// ListQuotations returns quotations in chronological order, optionally
// filtered by ticker. A positive limit keeps only the most recent bars.
func (s *Service) ListQuotations(ctx context.Context, ticker string, limit int) ([]models.Quotation, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	query := s.db.WithContext(ctx).Model(&models.Quotation{})
	if ticker != "" {
		query = query.Where("ticker = ?", normalizeTicker(ticker))
	}

	quotations := []models.Quotation{}
	if limit > 0 {
		if err := query.Order("date DESC, id DESC").Limit(limit).Find(&quotations).Error; err != nil {
			return nil, fmt.Errorf("failed to list quotations: %w", err)
		}
		for i, j := 0, len(quotations)-1; i < j; i, j = i+1, j-1 {
			quotations[i], quotations[j] = quotations[j], quotations[i]
		}
		return quotations, nil
	}

	if err := query.Order("date, id").Find(&quotations).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	return quotations, nil
}

// InsertQuotations appends daily bars.
func (s *Service) InsertQuotations(ctx context.Context, quotations []models.Quotation) (int, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}
	if len(quotations) == 0 {
		return 0, nil
	}
	for i := range quotations {
		q := &quotations[i]
		q.ID = 0
		q.Ticker = normalizeTicker(q.Ticker)
		if q.Ticker == "" {
			return 0, fmt.Errorf("%w: quotation %d has no ticker", ErrInvalid, i)
		}
		if _, err := time.Parse(models.DateLayout, q.Date); err != nil {
			return 0, fmt.Errorf("%w: quotation %d date %q is not YYYY-MM-DD", ErrInvalid, i, q.Date)
		}
	}

	if err := s.db.WithContext(ctx).CreateInBatches(&quotations, 500).Error; err != nil {
		return 0, fmt.Errorf("failed to insert quotations: %w", err)
	}
	return len(quotations), nil
}

// Indicators ranks every stored fundamental.
func (s *Service) Indicators(ctx context.Context) ([]strategy.Indicator, error) {
	fundamentals, err := s.ListFundamentals(ctx)
	if err != nil {
		return nil, err
	}
	quotations, err := s.ListQuotations(ctx, "", 0)
	if err != nil {
		return nil, err
	}
	return strategy.Rank(fundamentals, quotations), nil
}

// Snapshot computes the indicators and stores them as a JSON object. With
// ensureBucket the bucket is created first when missing.
func (s *Service) Snapshot(ctx context.Context, ensureBucket bool) (string, error) {
	if s.client == nil {
		return "", ErrStorageUnavailable
	}

	indicators, err := s.Indicators(ctx)
	if err != nil {
		return "", err
	}

	if ensureBucket {
		if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
			return "", err
		}
	}

	payload, err := json.Marshal(indicators)
	if err != nil {
		return "", fmt.Errorf("failed to encode indicators: %w", err)
	}

	name := SnapshotPrefix + s.now().UTC().Format(SnapshotLayout) + ".json"
	_, err = s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}

	s.logger.Info("Indicator snapshot stored",
		zap.String("bucket", s.bucket),
		zap.String("object", name),
		zap.Int("indicators", len(indicators)))
	return name, nil
}

// ListSnapshots returns the archived snapshot names, newest first.
func (s *Service) ListSnapshots(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}

	names := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: SnapshotPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		names = append(names, strings.TrimPrefix(obj.Key, SnapshotPrefix))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// GetSnapshot reads one archived snapshot.
func (s *Service) GetSnapshot(ctx context.Context, name string) ([]byte, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	if name == "" || path.Base(name) != name || !strings.HasSuffix(name, ".json") {
		return nil, fmt.Errorf("%w: snapshot name %q", ErrInvalid, name)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, SnapshotPrefix+name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}
	return data, nil
}

// TableColumns inspects one of the feature's tables. Other table names are
// reported as ErrNotFound.
func (s *Service) TableColumns(name string) ([]coredb.ColumnInfo, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	switch name {
	case models.Fundamental{}.TableName(), models.Quotation{}.TableName():
		return coredb.GetTableColumns(s.db, name)
	default:
		return nil, ErrNotFound
	}
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
