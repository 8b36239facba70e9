package recommend

// Statically defined defaults substituted when the model output is missing or
// unusable. Kept as named values so deployments can be retuned without
// touching the pipeline logic.

// DefaultCareers is returned when the model suggests no careers.
var DefaultCareers = []string{
	"Software Engineer",
	"Full Stack Developer",
	"AI Developer",
}

// Fallback learning-path item used when the model produces no usable plan.
const (
	FallbackTopic        = "JavaScript Basics"
	FallbackWhyImportant = "Essential for web app development"
	FallbackYouTubeQuery = "JavaScript crash course"
)

// FallbackPracticeQuestions are the practice prompts attached to the fallback topic.
var FallbackPracticeQuestions = []string{
	"Build a calculator app",
	"Reverse a string",
	"LeetCode: Two Sum",
}

// DefaultEnrichmentQuery is the video search term used when a learning-path
// item carries a blank topic.
const DefaultEnrichmentQuery = "career development"

// FallbackChatAnswer is returned when the chat model output cannot be parsed.
const FallbackChatAnswer = "Sorry, I couldn't understand that."

// Placeholders rendered into the prompt when the user has recorded nothing yet.
const (
	noSkillsPlaceholder = "No skills found"
	noGoalsPlaceholder  = "No goal set"
)
