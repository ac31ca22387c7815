package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiMute    Emoji = "🔇" // quiet mode

	EmojiDeployRecord Emoji = "🐣" // deploying challenge records
	EmojiClearRecord  Emoji = "🧹" // clearing challenge records
	EmojiZone         Emoji = "🗺️" // zone resolution

	EmojiPing         Emoji = "🔔" // pinging and health checks
	EmojiNotification Emoji = "📨" // notifications

	EmojiNow Emoji = "🏃" // an event that is happening now or immediately
	EmojiBye Emoji = "👋" // bye!

	EmojiGood        Emoji = "😊" // good news
	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
