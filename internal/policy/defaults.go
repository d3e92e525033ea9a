package policy

import "github.com/shopspring/decimal"

// Default returns the out-of-the-box spending policy used when no
// configuration is supplied.
func Default() SpendingPolicy {
	return SpendingPolicy{
		MonthlyCap:         decimal.NewFromInt(150),
		MaxPerSubscription: decimal.NewFromInt(50),
		TrustedMerchants: []string{
			"Netflix", "Spotify", "AWS Cloud", "Apple",
			"Google", "Hulu", "Disney+", "Claude",
		},
		AutoBlockTrialConversion: true,
		InactivityThresholdDays:  30,
	}
}
