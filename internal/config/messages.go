package config

// Toast titles shown to the user.
const (
	MsgLoginSuccess  = "Logged in successfully!"
	MsgLoginFailed   = "Failed to log in."
	MsgSignupSuccess = "Signed up successfully!"
	MsgSignupFailed  = "Failed to sign up."

	MsgSaveFailed   = "Failed to save post."
	MsgDeleteFailed = "Failed to delete post."
	MsgLoadFailed   = "Failed to load posts."
)

// Labels of the draft submit button.
const (
	LabelCreatePost = "Create Post"
	LabelUpdatePost = "Update Post"
)
