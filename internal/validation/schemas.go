package validation

const (
	msgEmptyValue = "Empty values are not accepted"
)

// RegisterSchema validates POST /auth/create.
var RegisterSchema = Schema{Fields: []Field{
	{
		Name:            "userName",
		Kind:            String,
		RequiredMessage: msgEmptyValue,
		TypeMessage:     "User name must be a string",
		Rules: []Rule{
			{Tag: "required", Message: msgEmptyValue},
		},
	},
	{
		Name:            "email",
		Kind:            String,
		RequiredMessage: msgEmptyValue,
		TypeMessage:     "Email must be a string",
		Rules: []Rule{
			{Tag: "required", Message: msgEmptyValue},
			{Tag: "email", Message: "Invalid email"},
		},
	},
	{
		Name:            "password",
		Kind:            String,
		RequiredMessage: msgEmptyValue,
		TypeMessage:     "Password must be a string",
		Rules: []Rule{
			{Tag: "required", Message: msgEmptyValue},
			{Tag: "min=8", Message: "Password must be at least 8 characters"},
			{Tag: "containsany=!@#$%^&*,hasupper", Message: "Password must contain at least one special character and one uppercase letter"},
		},
	},
}}

const msgLoginRequired = "Email and password are required"

// LoginSchema validates POST /auth/login. Credentials are not checked for
// format here, a bad pair is reported as 401 by the login itself.
var LoginSchema = Schema{Fields: []Field{
	{
		Name:            "email",
		Kind:            String,
		RequiredMessage: msgLoginRequired,
		TypeMessage:     msgLoginRequired,
		Rules:           []Rule{{Tag: "required", Message: msgLoginRequired}},
	},
	{
		Name:            "password",
		Kind:            String,
		RequiredMessage: msgLoginRequired,
		TypeMessage:     msgLoginRequired,
		Rules:           []Rule{{Tag: "required", Message: msgLoginRequired}},
	},
}}

// BookSchema validates POST /books/create.
var BookSchema = Schema{Fields: []Field{
	{
		Name:            "title",
		Kind:            String,
		RequiredMessage: "Title is required",
		TypeMessage:     "Title must be a string",
		Rules: []Rule{
			{Tag: "required", Message: "Title is required"},
			{Tag: "max=255", Message: "Title must be at most 255 characters"},
		},
	},
	{
		Name:            "author",
		Kind:            String,
		RequiredMessage: "Author is required",
		TypeMessage:     "Author must be a string",
		Rules: []Rule{
			{Tag: "required", Message: "Author is required"},
			{Tag: "max=255", Message: "Author must be at most 255 characters"},
		},
	},
	{
		Name:        "description",
		Kind:        String,
		Optional:    true,
		TypeMessage: "Description must be a string",
	},
	{
		Name:           "published_year",
		Kind:           Int,
		Optional:       true,
		TypeMessage:    "Published year must be a number",
		IntegerMessage: "Published year must be an integer",
	},
}}

// ReviewSchema validates review creation and edits.
var ReviewSchema = Schema{Fields: []Field{
	{
		Name:        "review_text",
		Kind:        String,
		Optional:    true,
		TypeMessage: "Review text must be a string",
	},
	{
		Name:        "rating",
		Kind:        Int,
		TypeMessage: "Rating must be an integer",
	},
}}
