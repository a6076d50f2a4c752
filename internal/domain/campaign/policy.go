package campaign

import "fmt"

const DefaultSubject = "Complete your purchase"

// StepPolicy is the content decision for one campaign step.
type StepPolicy struct {
	Step            int
	Subject         string
	Content         string
	IncludeDiscount bool
	DiscountCode    *string
	DiscountPercent *int
}

// ResolveStep decides subject and discount for step (1..3).
// A discount is offered from step 2 on, and only when the owner enabled
// escalation and configured a code.
func ResolveStep(step int, cfg OwnerConfig) StepPolicy {
	policy := StepPolicy{
		Step:    step,
		Subject: cfg.Subject,
		Content: cfg.Content,
	}
	if policy.Subject == "" {
		policy.Subject = DefaultSubject
	}

	if step < 2 || !cfg.DiscountEnabled || cfg.DiscountCode == "" {
		return policy
	}

	code := cfg.DiscountCode
	policy.IncludeDiscount = true
	policy.DiscountCode = &code

	if cfg.DiscountPercent == nil || *cfg.DiscountPercent <= 0 {
		return policy
	}
	percent := *cfg.DiscountPercent
	policy.DiscountPercent = &percent

	if step == 2 {
		policy.Subject = fmt.Sprintf("%d%% off — complete your purchase", percent)
	} else {
		policy.Subject = fmt.Sprintf("Last chance! %d%% off", percent)
	}
	return policy
}
