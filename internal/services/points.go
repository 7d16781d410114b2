package services

// Score computes the points for a contribution: one point per whole currency
// unit, plus 50% for an active streak and 25% for an early-week contribution.
// Pure, so it can be exercised in isolation.
func Score(amountCents int64, hasStreak, isEarly bool) int {
	base := int(amountCents / 100)

	bonus := 0
	if hasStreak {
		bonus += base / 2
	}
	if isEarly {
		bonus += base / 4
	}

	return base + bonus
}

// BoostBonus is the booster's points-only reward, a divisor slice of the base
// score with a floor of one point. The divisor is a config knob.
func BoostBonus(amountCents int64, divisor int) int {
	if divisor <= 0 {
		divisor = BOOST_BONUS_DEFAULT_DIVISOR
	}

	bonus := Score(amountCents, false, false) / divisor
	if bonus < 1 {
		bonus = 1
	}
	return bonus
}
