package http

import "net/http"

// NewRouter registers every loan endpoint behind the rate limiter.
func NewRouter(
	loanHandler *LoanHandler,
	tenureHandler *TenureHandler,
	limiter *RateLimiter,
) *http.ServeMux {
	mux := http.NewServeMux()
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux.Handle("/loan/emi", limited(loanHandler.QuoteEMI))
	mux.Handle("/loan/schedule", limited(loanHandler.GenerateSchedule))
	mux.Handle("/loan/recommend-tenure", limited(tenureHandler.RecommendTenure))
	mux.Handle("/loan/plans/{id}", limited(loanHandler.GetPlan))

	return mux
}
