// Package client is the API gateway to the auth service.
//
// # Overview
//
// Client describes the three operations of the service: Login, Register
// and FetchProfile. HTTPClient implements them over REST/JSON:
//
//	POST /api/auth/login     {username, password}         -> {access_token, user}
//	POST /api/auth/register  {username, email, password}  -> {access_token, user}
//	GET  /api/auth/profile   Authorization: Bearer <token> -> user
//
// # Error Handling
//
// The gateway only tells three outcomes apart and leaves their meaning to
// the caller:
//   - success: the decoded body and a nil error;
//   - the server answered with a non-2xx status: *StatusError, carrying the
//     "detail" message when the body has one (errors.Is(err,
//     ErrUnauthorized) holds for 401/403);
//   - the exchange did not complete: an error wrapping ErrUnavailable.
//
// A 2xx body that cannot be decoded yields ErrMalformedResponse.
package client
