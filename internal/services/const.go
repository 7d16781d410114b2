package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
)

var ErrInvalidAmount = errors.New("amount must be positive")
var ErrPoolNotFound = errors.New("pool not found")
var ErrUserNotFound = errors.New("user not found")
var ErrMembershipNotFound = errors.New("membership not found")
var ErrPoolLock = errors.New("pool locked")
var ErrUserLock = errors.New("user locked")
var ErrSelfBoost = errors.New("cannot boost yourself")

const (
	CONFIG_SERVER_MODE          = "SERVER_MODE"
	CONFIG_LEADERBOARD_LIMIT    = "LEADERBOARD_LIMIT"
	CONFIG_BOOST_BONUS_DIVISOR  = "BOOST_BONUS_DIVISOR"
	CONFIG_DEFAULT_FORFEIT      = "DEFAULT_FORFEIT_CENTS"
	CONFIG_CRONJOB_TIME_ACCRUAL = "CRONJOB_TIME_ACCRUAL"

	SERVER_MODE_DEVELOPMENT = "development"
	SERVER_MODE_STAGING     = "staging"
	SERVER_MODE_PRODUCTION  = "production"

	LEADERBOARD_DEFAULT_LIMIT = 20

	// policy knobs
	BOOST_BONUS_DEFAULT_DIVISOR = 10
	DEFAULT_FORFEIT_CENTS       = 500

	// rates are annual; accrual applies the daily slice
	USER_ANNUAL_RATE       = 0.025
	INVESTMENT_ANNUAL_RATE = 0.05

	CONTRIBUTION_RATE_LIMIT_PER_MINUTE = 30
	BOOST_RATE_LIMIT_PER_MINUTE        = 30

	CACHE_TTL_15_SECONDS = 15 * time.Second
	CACHE_TTL_1_MIN      = 1 * time.Minute
	CACHE_TTL_5_MINS     = 5 * time.Minute
	CACHE_TTL_1_HOUR     = 1 * time.Hour

	EVENT_CONTRIBUTION_NEW = "contribution:new"
	EVENT_PEER_BOOST_NEW   = "peer_boost:new"
)

// isMissingRow distinguishes "the row does not exist" from the store being
// unreachable; the two must not surface as the same error kind.
func isMissingRow(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func storeError(err error, missing error) error {
	if isMissingRow(err) {
		return errorx.Wrap(missing, errorx.NotExist)
	}
	return errorx.Wrap(err, errorx.Service)
}

func LockKeyPool(poolID int64) string {
	return fmt.Sprintf("lock:pool:%d", poolID)
}

func LockKeyUser(userID int64) string {
	return fmt.Sprintf("lock:user:%d", userID)
}

func LockKeyUserInterest(userID int64) string {
	return fmt.Sprintf("lock:user-interest:%d", userID)
}

// db
func DBKeyUser(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

func DBKeyPool(poolID int64) string {
	return fmt.Sprintf("pool:%d", poolID)
}

func DBKeyConfig(key string) string {
	return fmt.Sprintf("config:%s", key)
}

func DBKeyPoolLeaderboard(poolID int64, limit int) string {
	return fmt.Sprintf("leaderboard_by_pool:%d:%d", poolID, limit)
}

func DBKeyUserBadges(userID int64) string {
	return fmt.Sprintf("user_badges:%d", userID)
}

func LimitKeyContribution(userID int64) string {
	return fmt.Sprintf("limit:contribution:%d", userID)
}

func LimitKeyBoost(userID int64) string {
	return fmt.Sprintf("limit:boost:%d", userID)
}
