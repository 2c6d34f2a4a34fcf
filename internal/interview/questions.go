package interview

// DefaultQuestions is the fixed question sequence every mock interview
// walks through, in order.
var DefaultQuestions = []string{
	"Tell me about yourself and your background.",
	"What are your strongest technical or professional skills?",
	"Describe a difficult problem you solved and how you approached it.",
	"Why are you interested in this role and company?",
	"Where do you see yourself professionally in the next 3-5 years?",
}
