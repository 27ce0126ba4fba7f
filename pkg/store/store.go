package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-pkgz/lgr"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

const colFeeds = "feeds"

// ErrNotFound is returned when a referenced feed does not exist
var ErrNotFound = errors.New("feed not found")

// Feeds is the MongoDB-backed feed store. All mutations are expressed as
// atomic filtered updates; disablement writes carry a field-absence guard so
// the first disabling writer wins and later racing writers become no-ops.
type Feeds struct {
	col *mongo.Collection
}

// NewFeeds creates a feed store on the given database
func NewFeeds(db *mongo.Database) *Feeds {
	return &Feeds{col: db.Collection(colFeeds)}
}

// Migrate creates the indexes the query surface relies on
func (f *Feeds) Migrate(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "url", Value: 1}}},
		{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "refresh_rate", Value: 1}}},
	}
	if _, err := f.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create feed indexes: %w", err)
	}
	return nil
}

// GetFeed retrieves a feed by id, returns ErrNotFound if it doesn't exist
func (f *Feeds) GetFeed(ctx context.Context, id string) (*domain.Feed, error) {
	var feed domain.Feed
	err := f.col.FindOne(ctx, bson.M{"_id": id}).Decode(&feed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feed %s: %w", id, err)
	}
	return &feed, nil
}

// IterateDispatchable streams enabled feeds at the given rate that have at
// least one enabled destination, invoking fn per feed. Iteration is strictly
// sequential and keeps memory bounded regardless of fleet size.
func (f *Feeds) IterateDispatchable(ctx context.Context, rate int, fn func(*domain.Feed) error) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := f.col.Find(ctx, dispatchableFilter(rate), opts)
	if err != nil {
		return fmt.Errorf("find dispatchable feeds at rate %d: %w", rate, err)
	}
	defer func() {
		if e := cur.Close(ctx); e != nil {
			lgr.Printf("[WARN] failed to close feed cursor: %v", e)
		}
	}()

	for cur.Next(ctx) {
		var feed domain.Feed
		if err := cur.Decode(&feed); err != nil {
			return fmt.Errorf("decode feed: %w", err)
		}
		if err := fn(&feed); err != nil {
			return err
		}
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("iterate dispatchable feeds: %w", err)
	}
	return nil
}

// DistinctDispatchableURLs returns the distinct source URLs among enabled
// feeds at the given rate with at least one enabled destination
func (f *Feeds) DistinctDispatchableURLs(ctx context.Context, rate int) ([]string, error) {
	var urls []string
	if err := f.col.Distinct(ctx, "url", dispatchableFilter(rate)).Decode(&urls); err != nil {
		return nil, fmt.Errorf("distinct urls at rate %d: %w", rate, err)
	}
	sort.Strings(urls)
	return urls, nil
}

// DistinctRates returns the distinct refresh rates currently assigned to
// enabled feeds
func (f *Feeds) DistinctRates(ctx context.Context) ([]int, error) {
	filter := bson.M{"disabled_code": bson.M{"$exists": false}}
	var rates []int
	if err := f.col.Distinct(ctx, "refresh_rate", filter).Decode(&rates); err != nil {
		return nil, fmt.Errorf("distinct refresh rates: %w", err)
	}
	sort.Ints(rates)
	return rates, nil
}

// AssignRate bulk-sets the refresh rate for all feeds owned by the given
// accounts whose current rate differs. Returns the number of modified feeds.
func (f *Feeds) AssignRate(ctx context.Context, accountIDs []string, rate int) (int64, error) {
	if len(accountIDs) == 0 {
		return 0, nil
	}
	res, err := f.col.UpdateMany(ctx, rateAssignFilter(accountIDs, rate),
		bson.M{"$set": bson.M{"refresh_rate": rate}})
	if err != nil {
		return 0, fmt.Errorf("assign rate %d: %w", rate, err)
	}
	return res.ModifiedCount, nil
}

// AssignDefaultRate resets the refresh rate to the default for all feeds not
// owned by an entitled account, scoped by rate inequality so repeat runs
// write nothing. Returns the number of modified feeds.
func (f *Feeds) AssignDefaultRate(ctx context.Context, entitledAccountIDs []string, rate int) (int64, error) {
	res, err := f.col.UpdateMany(ctx, defaultRateFilter(entitledAccountIDs, rate),
		bson.M{"$set": bson.M{"refresh_rate": rate}})
	if err != nil {
		return 0, fmt.Errorf("assign default rate %d: %w", rate, err)
	}
	return res.ModifiedCount, nil
}

// DisableFeedsByURL disables every enabled feed sharing the given URL and
// marks its health failed. Already-disabled feeds are untouched.
func (f *Feeds) DisableFeedsByURL(ctx context.Context, url, code string, health domain.HealthStatus) (int64, error) {
	update := bson.M{"$set": bson.M{"disabled_code": code, "health_status": health}}
	res, err := f.col.UpdateMany(ctx, disableByURLFilter(url), update)
	if err != nil {
		return 0, fmt.Errorf("disable feeds by url %s: %w", url, err)
	}
	return res.ModifiedCount, nil
}

// DisableFeed sets the disabled code on a single feed, guarded by the code
// being currently absent. Returns false when the guard did not match.
func (f *Feeds) DisableFeed(ctx context.Context, id, code string) (bool, error) {
	filter := bson.M{"_id": id, "disabled_code": bson.M{"$exists": false}}
	res, err := f.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"disabled_code": code}})
	if err != nil {
		return false, fmt.Errorf("disable feed %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

// DisableDestination sets the disabled code on one destination of a feed,
// addressed by positional index with an id re-check in the filter. If the
// index has shifted under a concurrent admin edit the filter stops matching
// and the update is a no-op, reported as false.
func (f *Feeds) DisableDestination(ctx context.Context, feedID string, index int, destinationID, code string) (bool, error) {
	filter, update := destinationDisable(feedID, index, destinationID, code)
	res, err := f.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("disable destination %s on feed %s: %w", destinationID, feedID, err)
	}
	return res.MatchedCount > 0, nil
}

// EnforceLimits disables feeds beyond each account's cap, oldest kept first.
// Feeds already carrying a disabled code are left as they are.
func (f *Feeds) EnforceLimits(ctx context.Context, limits []domain.AccountLimit) error {
	for _, lim := range limits {
		if lim.MaxFeeds <= 0 {
			continue
		}
		if err := f.enforceAccountLimit(ctx, lim); err != nil {
			return err
		}
	}
	return nil
}

func (f *Feeds) enforceAccountLimit(ctx context.Context, lim domain.AccountLimit) error {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := f.col.Find(ctx, bson.M{"account_id": lim.AccountID}, opts)
	if err != nil {
		return fmt.Errorf("find feeds for account %s: %w", lim.AccountID, err)
	}
	defer func() {
		if e := cur.Close(ctx); e != nil {
			lgr.Printf("[WARN] failed to close feed cursor: %v", e)
		}
	}()

	pos, disabled := 0, 0
	for cur.Next(ctx) {
		var feed domain.Feed
		if err := cur.Decode(&feed); err != nil {
			return fmt.Errorf("decode feed: %w", err)
		}
		pos++
		if pos <= lim.MaxFeeds {
			continue
		}
		matched, err := f.DisableFeed(ctx, feed.ID, domain.DisabledCodeExceededFeedLimit)
		if err != nil {
			return err
		}
		if matched {
			disabled++
		}
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("iterate feeds for account %s: %w", lim.AccountID, err)
	}
	if disabled > 0 {
		lgr.Printf("[INFO] disabled %d feeds over limit %d for account %s", disabled, lim.MaxFeeds, lim.AccountID)
	}
	return nil
}

// Stats holds fleet counts for the ops endpoints
type Stats struct {
	Total    int64 `json:"total"`
	Disabled int64 `json:"disabled"`
}

// Stats returns fleet-wide feed counts
func (f *Feeds) Stats(ctx context.Context) (Stats, error) {
	total, err := f.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return Stats{}, fmt.Errorf("count feeds: %w", err)
	}
	disabled, err := f.col.CountDocuments(ctx, bson.M{"disabled_code": bson.M{"$exists": true}})
	if err != nil {
		return Stats{}, fmt.Errorf("count disabled feeds: %w", err)
	}
	return Stats{Total: total, Disabled: disabled}, nil
}
