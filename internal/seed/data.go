package seed

type city struct {
	city    string
	country string
}

var cities = []city{
	{"New York", "US"}, {"Los Angeles", "US"}, {"Chicago", "US"},
	{"London", "UK"}, {"Paris", "France"}, {"Tokyo", "Japan"},
	{"Sydney", "Australia"}, {"Barcelona", "Spain"}, {"Rome", "Italy"},
	{"Amsterdam", "Netherlands"},
}

var titleKinds = []string{"House", "Apartment", "Villa", "Cabin", "Loft"}

var titleWords = []string{"Sunny", "Cozy", "Quiet", "Modern", "Rustic", "Charming", "Spacious", "Hidden"}

var streets = []string{"Main Street", "Oak Avenue", "Harbor Road", "Maple Lane", "Station Road", "Park Drive"}

var descriptions = []string{
	"Bright rooms close to the old town, a short walk from cafes and the river.",
	"A calm retreat with a garden, ideal for families and longer stays.",
	"Freshly renovated with a fully equipped kitchen and fast internet.",
	"Top floor with a view over the rooftops and plenty of natural light.",
}

var amenities = []string{
	"wifi", "kitchen", "washer", "dryer", "air conditioning",
	"heating", "tv", "hair dryer", "iron", "workspace",
	"pool", "hot tub", "parking", "gym", "breakfast",
	"pets allowed", "smoking allowed", "wheelchair accessible",
}

var specialRequests = []string{
	"Late check-in around 11pm.",
	"Could we get an extra set of towels?",
	"Travelling with a baby, a crib would help.",
	"Early check-in if possible.",
}

var cancellationReasons = []string{
	"Change of plans",
	"Found a better deal",
	"Unexpected circumstances",
	"Travel restrictions",
	"Personal reasons",
}

var reviewTitles = map[int][]string{
	5: {"Amazing stay!", "Perfect in every way", "Highly recommended", "Will definitely come back", "Absolutely wonderful"},
	4: {"Great place", "Very nice stay", "Enjoyed our time here", "Comfortable and clean", "Good experience overall"},
	3: {"Decent place", "Average experience", "It was okay", "Met expectations", "Nothing special"},
	2: {"Disappointing", "Could be better", "Not what I expected", "Several issues", "Below average"},
	1: {"Terrible experience", "Would not recommend", "Very disappointing", "Worst stay ever", "Never again"},
}

var reviewComments = map[int][]string{
	5: {"Spotless, well located and the host was quick to reply.", "Everything matched the photos and more."},
	4: {"Nice place with a comfortable bed, a bit noisy at night.", "Good value and an easy check-in."},
	3: {"Fine for a short stay, nothing more.", "Clean enough, but the kitchen was poorly equipped."},
	2: {"Several things were broken and the wifi kept dropping.", "Smaller than it looked in the photos."},
	1: {"Dirty on arrival and the host never answered.", "The listing did not match reality at all."},
}

var ownerResponses = []string{
	"Thank you for your feedback!",
	"We appreciate your review and hope to host you again!",
	"Thanks for staying with us!",
	"We're glad you enjoyed your stay!",
	"We appreciate your honest feedback.",
}
