package api

import (
	"net/http"

	"agency/src/models"

	"github.com/go-chi/jwtauth"
)

// verifyToken guards the /api subtree. Every verification outcome is
// appended to the security log; audit write failures never block the
// request path.
func (s *Server) verifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := jwtauth.VerifyRequest(s.tokenAuth, r, jwtauth.TokenFromHeader)
		if err != nil {
			s.audit(r, "", models.EventTokenRejected, err.Error())
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		s.audit(r, token.Subject(), models.EventTokenAccepted, "")
		ctx := jwtauth.NewContext(r.Context(), token, nil)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) audit(r *http.Request, userID string, event models.SecurityEvent, detail string) {
	if err := s.securityLogs.Record(r.Context(), &models.SecurityLog{
		UserID:   userID,
		Event:    event,
		Detail:   detail,
		RemoteIP: r.RemoteAddr,
	}); err != nil {
		s.logger.WithError(err).Warn("failed to record security event")
	}
}
