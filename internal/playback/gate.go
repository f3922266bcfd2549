// Package playback holds the entitlement gate and the timer-driven flows
// that sit between a play request and the player: the advertisement
// interstitial and the simulated playback clock.
package playback

import "github.com/mmcdole/streamvault/internal/domain"

// Decide is the entitlement gate. Premium sessions play directly; basic
// sessions must sit through an advertisement first. Every playback request,
// the featured title included, goes through here.
func Decide(tier domain.Tier, title domain.Title) domain.PlaybackDecision {
	if tier == domain.TierPremium {
		return domain.PlaybackDecision{Kind: domain.PlayDirectly, Title: title}
	}
	return domain.PlaybackDecision{Kind: domain.PlayAfterAd, Title: title}
}

// OffersUpgrade reports whether the upgrade affordance is shown for tier
func OffersUpgrade(tier domain.Tier) bool {
	return tier != domain.TierPremium
}
