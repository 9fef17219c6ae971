// Package odisha holds the static bilingual reference data served by the
// API: districts, interest tags, cultural events, safety tips and
// emergency contact numbers. Everything here is immutable lookup data
// with English and Odia labels; nothing is persisted.
package odisha

// BilingualLabel is an English label with its Odia translation.
type BilingualLabel struct {
	Name     string `json:"name"`
	NameOdia string `json:"name_odia"`
}

// SafetyTip is a bilingual safety guideline shown in the app.
type SafetyTip struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TitleOdia       string `json:"title_odia"`
	DescriptionOdia string `json:"description_odia"`
}

// EmergencyContact is a helpline number relevant to users in Odisha.
type EmergencyContact struct {
	Name     string `json:"name"`
	NameOdia string `json:"name_odia"`
	Number   string `json:"number"`
	Type     string `json:"type"`
}

// Districts lists the 30 districts of Odisha.
var Districts = []BilingualLabel{
	{Name: "Angul", NameOdia: "ଅନୁଗୁଳ"},
	{Name: "Balangir", NameOdia: "ବଲାଙ୍ଗୀର"},
	{Name: "Balasore", NameOdia: "ବାଲେଶ୍ୱର"},
	{Name: "Bargarh", NameOdia: "ବରଗଡ଼"},
	{Name: "Bhadrak", NameOdia: "ଭଦ୍ରକ"},
	{Name: "Boudh", NameOdia: "ବୌଦ୍ଧ"},
	{Name: "Cuttack", NameOdia: "କଟକ"},
	{Name: "Deogarh", NameOdia: "ଦେବଗଡ଼"},
	{Name: "Dhenkanal", NameOdia: "ଢେଙ୍କାନାଳ"},
	{Name: "Gajapati", NameOdia: "ଗଜପତି"},
	{Name: "Ganjam", NameOdia: "ଗଞ୍ଜାମ"},
	{Name: "Jagatsinghpur", NameOdia: "ଜଗତସିଂହପୁର"},
	{Name: "Jajpur", NameOdia: "ଯାଜପୁର"},
	{Name: "Jharsuguda", NameOdia: "ଝାରସୁଗୁଡ଼ା"},
	{Name: "Kalahandi", NameOdia: "କଳାହାଣ୍ଡି"},
	{Name: "Kandhamal", NameOdia: "କନ୍ଧମାଳ"},
	{Name: "Kendrapara", NameOdia: "କେନ୍ଦ୍ରାପଡ଼ା"},
	{Name: "Kendujhar", NameOdia: "କେନ୍ଦୁଝର"},
	{Name: "Khordha", NameOdia: "ଖୋର୍ଦ୍ଧା"},
	{Name: "Koraput", NameOdia: "କୋରାପୁଟ"},
	{Name: "Malkangiri", NameOdia: "ମାଲକାନଗିରି"},
	{Name: "Mayurbhanj", NameOdia: "ମୟୂରଭଞ୍ଜ"},
	{Name: "Nabarangpur", NameOdia: "ନବରଙ୍ଗପୁର"},
	{Name: "Nayagarh", NameOdia: "ନୟାଗଡ଼"},
	{Name: "Nuapada", NameOdia: "ନୁଆପଡ଼ା"},
	{Name: "Puri", NameOdia: "ପୁରୀ"},
	{Name: "Rayagada", NameOdia: "ରାୟଗଡ଼ା"},
	{Name: "Sambalpur", NameOdia: "ସମ୍ବଲପୁର"},
	{Name: "Subarnapur", NameOdia: "ସୁବର୍ଣ୍ଣପୁର"},
	{Name: "Sundargarh", NameOdia: "ସୁନ୍ଦରଗଡ଼"},
}

// CulturalInterests are interest tags specific to Odia culture.
var CulturalInterests = []BilingualLabel{
	{Name: "Classical Dance", NameOdia: "ଶାସ୍ତ୍ରୀୟ ନୃତ୍ୟ"},
	{Name: "Odissi Dance", NameOdia: "ଓଡ଼ିଶୀ ନୃତ୍ୟ"},
	{Name: "Folk Music", NameOdia: "ଲୋକ ସଙ୍ଗୀତ"},
	{Name: "Temple Visits", NameOdia: "ମନ୍ଦିର ଦର୍ଶନ"},
	{Name: "Jagannath Culture", NameOdia: "ଜଗନ୍ନାଥ ସଂସ୍କୃତି"},
	{Name: "Puri Festivals", NameOdia: "ପୁରୀ ପର୍ବ"},
	{Name: "Odia Literature", NameOdia: "ଓଡ଼ିଆ ସାହିତ୍ୟ"},
	{Name: "Traditional Crafts", NameOdia: "ପାରମ୍ପରିକ ଶିଳ୍ପ"},
	{Name: "Pattachitra Art", NameOdia: "ପଟ୍ଟଚିତ୍ର କଳା"},
	{Name: "Sambalpuri Culture", NameOdia: "ସମ୍ବଲପୁରୀ ସଂସ୍କୃତି"},
}

// CommonInterests are general-purpose interest tags.
var CommonInterests = []BilingualLabel{
	{Name: "Music", NameOdia: "ସଙ୍ଗୀତ"},
	{Name: "Movies", NameOdia: "ଚଳଚ୍ଚିତ୍ର"},
	{Name: "Books", NameOdia: "ବହି"},
	{Name: "Travel", NameOdia: "ଭ୍ରମଣ"},
	{Name: "Food", NameOdia: "ଖାଦ୍ୟ"},
	{Name: "Sports", NameOdia: "କ୍ରୀଡ଼ା"},
	{Name: "Photography", NameOdia: "ଫଟୋଗ୍ରାଫି"},
	{Name: "Cooking", NameOdia: "ରନ୍ଧନ"},
	{Name: "Yoga", NameOdia: "ଯୋଗ"},
	{Name: "Nature", NameOdia: "ପ୍ରକୃତି"},
	{Name: "Technology", NameOdia: "ପ୍ରଯୁକ୍ତିବିଦ୍ୟା"},
	{Name: "Art", NameOdia: "କଳା"},
}

// SafetyTips are the guidelines surfaced on the safety screen.
var SafetyTips = []SafetyTip{
	{
		ID:              "1",
		Title:           "Meet in Public Places",
		Description:     "Always meet new connections in public, well-lit areas with other people around.",
		TitleOdia:       "ସାର୍ବଜନୀନ ସ୍ଥାନରେ ସାକ୍ଷାତ କରନ୍ତୁ",
		DescriptionOdia: "ନୂତନ ସଂଯୋଗ ସହିତ ସର୍ବଦା ସାର୍ବଜନୀନ, ଆଲୋକିତ ସ୍ଥାନରେ ସାକ୍ଷାତ କରନ୍ତୁ।",
	},
	{
		ID:              "2",
		Title:           "Tell Someone Your Plans",
		Description:     "Inform a trusted friend or family member about your meeting plans.",
		TitleOdia:       "ଆପଣଙ୍କ ଯୋଜନା କାହାକୁ କୁହନ୍ତୁ",
		DescriptionOdia: "ଆପଣଙ୍କ ସାକ୍ଷାତ ଯୋଜନା ବିଷୟରେ ଜଣେ ବିଶ୍ୱସ୍ତ ବନ୍ଧୁ କିମ୍ବା ପରିବାର ସଦସ୍ୟଙ୍କୁ ଜଣାନ୍ତୁ।",
	},
	{
		ID:              "3",
		Title:           "Trust Your Instincts",
		Description:     "If something feels wrong, trust your gut and leave the situation.",
		TitleOdia:       "ଆପଣଙ୍କ ଅନୁଭବକୁ ବିଶ୍ୱାସ କରନ୍ତୁ",
		DescriptionOdia: "ଯଦି କିଛି ଭୁଲ ଲାଗୁଛି, ଆପଣଙ୍କ ଅନୁଭବକୁ ବିଶ୍ୱାସ କରନ୍ତୁ ଏବଂ ସେହି ପରିସ୍ଥିତି ଛାଡ଼ନ୍ତୁ।",
	},
	{
		ID:              "4",
		Title:           "Verify Identity",
		Description:     "Use our verification features to ensure you're talking to real people.",
		TitleOdia:       "ପରିଚୟ ଯାଞ୍ଚ କରନ୍ତୁ",
		DescriptionOdia: "ଆମର ଯାଞ୍ଚ ବୈଶିଷ୍ଟ୍ୟ ବ୍ୟବହାର କରି ନିଶ୍ଚିତ କରନ୍ତୁ ଯେ ଆପଣ ପ୍ରକୃତ ଲୋକଙ୍କ ସହିତ କଥା ହେଉଛନ୍ତି।",
	},
	{
		ID:              "5",
		Title:           "Respect Cultural Values",
		Description:     "Honor Odia traditions and cultural values in all interactions.",
		TitleOdia:       "ସାଂସ୍କୃତିକ ମୂଲ୍ୟବୋଧକୁ ସମ୍ମାନ କରନ୍ତୁ",
		DescriptionOdia: "ସମସ୍ତ ଯୋଗାଯୋଗରେ ଓଡ଼ିଆ ପରମ୍ପରା ଏବଂ ସାଂସ୍କୃତିକ ମୂଲ୍ୟବୋଧକୁ ସମ୍ମାନ କରନ୍ତୁ।",
	},
}

// EmergencyContacts are the helpline numbers shown on the safety screen.
var EmergencyContacts = []EmergencyContact{
	{Name: "Police", NameOdia: "ପୋଲିସ", Number: "100", Type: "emergency"},
	{Name: "Women Helpline", NameOdia: "ମହିଳା ହେଲ୍ପଲାଇନ", Number: "181", Type: "safety"},
	{Name: "Odisha Police Cyber Crime", NameOdia: "ଓଡ଼ିଶା ପୋଲିସ ସାଇବର କ୍ରାଇମ", Number: "1930", Type: "cyber"},
	{Name: "Child Helpline", NameOdia: "ଶିଶୁ ହେଲ୍ପଲାଇନ", Number: "1098", Type: "child"},
	{Name: "Senior Citizen Helpline", NameOdia: "ବୟସ୍କ ନାଗରିକ ହେଲ୍ପଲାଇନ", Number: "14567", Type: "senior"},
}
