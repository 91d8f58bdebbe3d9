// Package model defines core data structures and types for the post board.
package model

type PostID string

// Post is a blog post as returned by the service. The ID is assigned by the
// service, never by the client.
type Post struct {
	ID PostID

	Title   string
	Content string
}

// Token is the result of a successful login.
type Token struct {
	AccessToken string
}

func (t Token) IsZero() bool {
	return t.AccessToken == ""
}

// FindPost returns the post with the given id from a snapshot.
func FindPost(posts []Post, id PostID) (Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}
