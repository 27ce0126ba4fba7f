package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// dispatchableFilter selects enabled feeds at the given rate that still have
// at least one enabled destination
func dispatchableFilter(rate int) bson.M {
	return bson.M{
		"refresh_rate":  rate,
		"disabled_code": bson.M{"$exists": false},
		"destinations":  bson.M{"$elemMatch": bson.M{"disabled_code": bson.M{"$exists": false}}},
	}
}

// rateAssignFilter scopes a bulk rate assignment to the given accounts and to
// feeds whose rate actually differs, so a repeat run modifies nothing
func rateAssignFilter(accountIDs []string, rate int) bson.M {
	return bson.M{
		"account_id":   bson.M{"$in": accountIDs},
		"refresh_rate": bson.M{"$ne": rate},
	}
}

// defaultRateFilter selects feeds of non-entitled accounts sitting at a
// non-default rate
func defaultRateFilter(entitledAccountIDs []string, rate int) bson.M {
	filter := bson.M{"refresh_rate": bson.M{"$ne": rate}}
	if len(entitledAccountIDs) > 0 {
		filter["account_id"] = bson.M{"$nin": entitledAccountIDs}
	}
	return filter
}

// disableByURLFilter selects enabled feeds sharing a failing URL
func disableByURLFilter(url string) bson.M {
	return bson.M{
		"url":           url,
		"disabled_code": bson.M{"$exists": false},
	}
}

// destinationDisable builds the positional filter and update for disabling a
// single destination. The id re-check in the filter prevents mis-targeting
// when the index shifted between read and write.
func destinationDisable(feedID string, index int, destinationID, code string) (filter, update bson.M) {
	field := fmt.Sprintf("destinations.%d", index)
	filter = bson.M{
		"_id":                    feedID,
		field + ".id":            destinationID,
		field + ".disabled_code": bson.M{"$exists": false},
	}
	update = bson.M{"$set": bson.M{field + ".disabled_code": code}}
	return filter, update
}
