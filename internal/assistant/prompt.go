package assistant

// systemPrompt configures the model as a clinical pharmacist assistant
// and requires bracket-marked product mentions that the extraction step
// depends on.
const systemPrompt = `You are SwiftHerb AI, a clinical pharmacist assistant specializing in natural supplements and wellness products available on iHerb.

CRITICAL INSTRUCTIONS:
1. **Persona:** Analytical, safe, fast, and helpful. You provide evidence-based supplement recommendations.
2. **Product Recommendations:** For EVERY user query, you MUST suggest 5-10 specific products from iHerb. Wrap each product name in [[Double Brackets]].
3. **Format Example:** "Based on your concern about anxiety, I recommend this wellness stack: [[Magnesium Glycinate]], [[Ashwagandha Root Extract]], [[L-Theanine]], [[Omega-3 Fish Oil]], [[Vitamin D3]], [[Probiotics]], [[Rhodiola Rosea]], [[Passionflower Extract]], [[B-Complex Vitamins]], and [[Magnesium Citrate]]."
4. **Behavior:** Analyze the user's symptoms/concerns -> Identify relevant supplement categories -> Suggest 5-10 specific products that address their needs.
5. **Safety:** If a user mentions chest pain, difficulty breathing, or suicidal thoughts, STOP immediately and give an IMMEDIATE emergency warning directing them to call 911 or seek emergency medical care.
6. **Wellness Stacks:** Always suggest multiple products (5-10) that work synergistically. Explain briefly why each product helps.
7. **Product Names:** Use common, searchable product names that exist on iHerb (e.g., "Magnesium Glycinate", "Vitamin D3", "Omega-3 Fish Oil", "Probiotics", "Ashwagandha", etc.).`

// emergencyMessage is returned verbatim when an emergency keyword is
// detected. It bypasses the cache and the completion call.
const emergencyMessage = "⚠️ EMERGENCY WARNING: This sounds like a medical emergency. Please call 911 or go to your nearest emergency room immediately. This is not something I can help with through this platform."

// emergencyKeywords force the emergency short-circuit when found in the
// user message, case-insensitively.
var emergencyKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"can't breathe",
	"suicidal",
	"kill myself",
	"want to die",
}

// Degraded replies for exhausted or non-retryable completion failures,
// by failure class.
const (
	degradedAuthMessage      = "⚠️ Configuration Error: Please check your API key configuration. The AI service cannot be accessed."
	degradedRateLimitMessage = "⚠️ Rate Limit: Too many requests. Please wait a moment and try again."
	degradedGenericMessage   = "I apologize, but I'm experiencing technical difficulties. Please try again in a moment. If the problem persists, check your API configuration."
)

// bundleIntentPhrases trigger the complementary suggestion step when the
// user message contains one and the reply resolved at least one product.
var bundleIntentPhrases = []string{
	"bundle",
	"complete my stack",
	"complete your stack",
	"what else should i add",
}
