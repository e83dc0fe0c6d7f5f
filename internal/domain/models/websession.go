// internal/domain/models/websession.go
package models

import "time"

// WebSession is the server-side record of a browser session: the token
// pair issued by the backend plus the serialized user profile snapshot.
//
// The user profile is stored as a JSON string rather than a subdocument
// so that reads can distinguish "absent" from "unparseable" — a corrupt
// stored profile is surfaced to the caller, not coerced to nil.
type WebSession struct {
	ID           string    `bson:"_id"`
	AccessToken  string    `bson:"access_token"`
	RefreshToken string    `bson:"refresh_token"`
	UserJSON     string    `bson:"user"`
	CreatedAt    time.Time `bson:"created_at"`
	ExpiresAt    time.Time `bson:"expires_at"`
}
