package textmatch

// synonymTable maps a canonical term to its synonym list. The table is
// asymmetric on purpose: RelatedTerms closes it symmetrically at lookup time.
//
// Grouped by topic cluster so a curator can find the right bucket.
var synonymTable = map[string][]string{
	// sports & fitness
	"fitness":  {"gym", "exercise", "workout", "health", "wellness", "training", "athlete", "active", "sport"},
	"gym":      {"fitness", "exercise", "workout", "weights", "training", "bodybuilding", "crossfit"},
	"yoga":     {"wellness", "meditation", "fitness", "flexibility", "zen", "namaste", "pilates"},
	"running":  {"jogging", "fitness", "cardio", "marathon", "runner", "track", "sprint"},
	"cycling":  {"bike", "bicycle", "biker", "mountain bike", "road bike", "cycling"},
	"swimming": {"swim", "pool", "water", "lap", "swimmer"},
	"hiking":   {"outdoor", "nature", "trekking", "backpacking", "trail", "mountain"},
	"climbing": {"rock climbing", "bouldering", "mountaineering", "rappelling"},

	// tech & electronics
	"gaming":     {"games", "gamer", "video games", "esports", "pc gaming", "console", "playstation", "xbox", "nintendo", "switch"},
	"gamer":      {"gaming", "games", "esports", "streamer", "twitch"},
	"tech":       {"technology", "gadget", "electronics", "digital", "smart", "device", "high-tech"},
	"computer":   {"pc", "laptop", "desktop", "tech", "computing", "macbook", "windows"},
	"smartphone": {"phone", "mobile", "iphone", "android", "cell", "samsung"},
	"tablet":     {"ipad", "kindle", "android tablet", "e-reader"},
	"smartwatch": {"watch", "fitness tracker", "apple watch", "wearable"},
	"headphones": {"earbuds", "airpods", "audio", "music", "wireless"},
	"keyboard":   {"mechanical", "typing", "gaming keyboard", "wireless keyboard"},
	"mouse":      {"gaming mouse", "wireless mouse", "trackpad"},

	// creative & arts
	"art":         {"creative", "painting", "drawing", "artistic", "artist", "craft"},
	"creative":    {"art", "craft", "diy", "maker", "artistic", "crafty", "handmade"},
	"painting":    {"art", "artist", "watercolor", "acrylic", "oil painting", "canvas"},
	"drawing":     {"art", "sketch", "sketching", "illustration", "pencil"},
	"photography": {"photo", "camera", "photographer", "photos", "pictures", "canon", "nikon", "sony"},
	"music":       {"musical", "musician", "audio", "sound", "instrument", "band", "guitar", "piano"},
	"guitar":      {"music", "musician", "acoustic", "electric", "bass"},
	"piano":       {"music", "keyboard", "keys", "musician"},
	"singing":     {"vocal", "singer", "karaoke", "music", "voice"},
	"crafts":      {"craft", "diy", "handmade", "creative", "maker", "crafty"},
	"diy":         {"craft", "handmade", "creative", "maker", "build", "project"},
	"sewing":      {"craft", "tailor", "fabric", "needle", "quilting"},
	"knitting":    {"craft", "yarn", "wool", "crochet"},
	"woodworking": {"carpenter", "woodwork", "diy", "craft", "build"},

	// food & cooking
	"cooking":   {"cook", "chef", "culinary", "kitchen", "baking", "food", "recipe", "cuisine"},
	"baking":    {"baker", "cook", "cooking", "pastry", "bread", "cakes", "dessert"},
	"chef":      {"cooking", "cook", "culinary", "kitchen", "professional chef"},
	"wine":      {"drinks", "beverage", "sommelier", "vineyard", "red wine", "white wine", "winery"},
	"coffee":    {"cafe", "espresso", "barista", "caffeine", "latte", "cappuccino", "brew"},
	"tea":       {"chai", "beverage", "matcha", "green tea", "herbal"},
	"cocktails": {"drinks", "mixology", "bartender", "bar", "alcohol", "spirits"},
	"bbq":       {"grill", "grilling", "barbecue", "outdoor", "smoking", "meat"},
	"vegan":     {"vegetarian", "plant-based", "healthy", "organic"},
	"foodie":    {"food", "cooking", "culinary", "gourmet", "eats", "dining"},

	// outdoor & travel
	"outdoor":      {"outdoors", "nature", "hiking", "camping", "adventure", "wilderness"},
	"travel":       {"traveler", "traveling", "trip", "vacation", "adventure", "wanderlust", "explorer"},
	"camping":      {"outdoor", "nature", "backpacking", "tent", "wilderness"},
	"beach":        {"ocean", "sea", "summer", "surf", "coastal", "tropical"},
	"surfing":      {"surf", "beach", "ocean", "water sports", "waves"},
	"skiing":       {"ski", "snow", "winter", "mountain", "snowboard"},
	"snowboarding": {"snowboard", "snow", "winter", "mountain", "ski"},
	"fishing":      {"angler", "fish", "outdoor", "lake", "river", "ocean"},
	"boating":      {"boat", "sailing", "yacht", "marina", "nautical", "sail"},

	// home & lifestyle
	"home":      {"house", "decor", "interior", "living", "apartment", "homeowner"},
	"decor":     {"decoration", "home", "interior", "design", "style"},
	"gardening": {"garden", "plants", "outdoor", "flowers", "green thumb", "landscape"},
	"plants":    {"garden", "green thumb", "indoor plants", "succulents", "flowers"},
	"reading":   {"books", "reader", "literature", "book lover", "bookworm"},
	"books":     {"reading", "reader", "literature", "novel", "bookworm"},
	"writing":   {"writer", "author", "journal", "creative writing", "blogger"},
	"movies":    {"film", "cinema", "tv", "entertainment", "netflix", "streaming"},
	"tv":        {"television", "shows", "series", "streaming", "netflix", "binge"},

	// fashion & beauty
	"fashion":  {"style", "clothing", "clothes", "apparel", "trendy", "fashionista"},
	"beauty":   {"cosmetics", "makeup", "skincare", "self-care", "spa"},
	"makeup":   {"cosmetics", "beauty", "lipstick", "foundation"},
	"skincare": {"beauty", "skin", "facial", "self-care", "spa"},
	"jewelry":  {"jewellery", "accessories", "necklace", "bracelet", "earrings"},

	// vehicles & brands
	"cars":       {"car", "auto", "automobile", "vehicle", "driving", "bmw", "mercedes", "tesla", "automotive", "ford", "toyota"},
	"bmw":        {"cars", "auto", "vehicle", "automobile", "luxury car"},
	"mercedes":   {"cars", "auto", "vehicle", "automobile", "luxury car", "benz"},
	"tesla":      {"cars", "electric car", "ev", "vehicle", "automobile"},
	"motorcycle": {"bike", "motorbike", "riding", "harley", "yamaha", "honda"},
	"truck":      {"pickup", "vehicle", "auto", "ford", "chevy", "ram"},

	// hobbies & interests
	"chess":       {"strategy", "board game", "intellectual", "game"},
	"puzzle":      {"jigsaw", "brain teaser", "sudoku", "crossword"},
	"board games": {"tabletop", "games", "card games", "strategy"},
	"collecting":  {"collector", "collection", "memorabilia", "collectibles"},
	"coins":       {"collecting", "numismatic", "currency", "collector"},
	"stamps":      {"collecting", "philately", "collector"},

	// pets & animals
	"pets": {"pet", "dog", "cat", "animal", "puppy", "kitten"},
	"dog":  {"puppy", "canine", "pet", "doggo", "pooch"},
	"cat":  {"kitten", "feline", "pet", "kitty"},
	"bird": {"parrot", "canary", "pet", "avian"},
	"fish": {"aquarium", "tank", "pet", "goldfish"},

	// wellness & self-care
	"wellness":   {"health", "self-care", "spa", "relaxation", "meditation", "mindfulness"},
	"meditation": {"mindfulness", "zen", "yoga", "wellness", "spiritual"},
	"spa":        {"relaxation", "wellness", "massage", "facial", "self-care"},
	"massage":    {"spa", "relaxation", "wellness", "therapy"},

	// professional & work
	"office":       {"work", "professional", "desk", "workplace", "corporate", "business"},
	"business":     {"professional", "entrepreneur", "corporate", "work", "startup"},
	"entrepreneur": {"business", "startup", "founder", "ceo", "hustler"},
	"teacher":      {"educator", "professor", "instructor", "teaching", "education"},
	"nurse":        {"medical", "healthcare", "doctor", "nursing", "hospital"},
	"engineer":     {"engineering", "tech", "software", "developer", "programmer"},
	"developer":    {"programmer", "coder", "software", "engineer", "tech"},
	"programmer":   {"developer", "coder", "software", "engineering", "tech"},

	// seasons & occasions
	"christmas":   {"holiday", "winter", "xmas", "festive", "santa"},
	"birthday":    {"bday", "celebration", "anniversary", "party"},
	"wedding":     {"marriage", "bride", "groom", "anniversary", "engagement"},
	"anniversary": {"celebration", "wedding", "milestone", "romantic"},

	// age groups
	"kid":    {"child", "children", "boy", "girl", "toddler", "youth"},
	"teen":   {"teenager", "adolescent", "youth", "young"},
	"adult":  {"grown-up", "mature"},
	"senior": {"elderly", "older", "retired", "grandparent"},

	// personality traits
	"athlete":      {"fitness", "sports", "active", "gym", "runner"},
	"intellectual": {"smart", "academic", "scholarly", "nerdy", "bookish"},
	"minimalist":   {"simple", "minimal", "clean", "organized"},
	"adventurer":   {"adventure", "explorer", "travel", "outdoor", "wanderlust"},
}
