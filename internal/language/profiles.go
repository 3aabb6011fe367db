package language

import "aadhira_hotel/internal/domain"

var profiles = map[string]domain.LanguageProfile{
	domain.LangEnglish: {
		Code:     domain.LangEnglish,
		Name:     "English",
		Greeting: "Hello! Welcome to Aadhira Hotel.",
		Templates: domain.Templates{
			Welcome:     "Welcome to Aadhira Hotel! How may I assist you today?",
			Help:        "I can help you with reservations, room information, hotel services, and general inquiries.",
			Reservation: "I'd be happy to help you with your reservation. What dates are you looking to stay?",
			Room:        "We offer Standard, Deluxe, and Suite rooms with modern amenities. Which type interests you?",
			Services:    "Our services include 24/7 room service, spa, fitness center, restaurant, and concierge assistance.",
			Goodbye:     "Thank you for choosing Aadhira Hotel. Have a wonderful day!",
		},
	},
	domain.LangHindi: {
		Code:     domain.LangHindi,
		Name:     "Hindi",
		Greeting: "नमस्ते! आधिरा होटल में आपका स्वागत है।",
		Templates: domain.Templates{
			Welcome:     "आधिरा होटल में आपका स्वागत है! आज मैं आपकी कैसे सहायता कर सकता हूं?",
			Help:        "मैं आपकी बुकिंग, कमरे की जानकारी, होटल सेवाओं और सामान्य पूछताछ में मदद कर सकता हूं।",
			Reservation: "मुझे आपकी बुकिंग में मदद करने में खुशी होगी। आप कौन सी तारीखों में रुकना चाहते हैं?",
			Room:        "हमारे पास आधुनिक सुविधाओं के साथ स्टैंडर्ड, डीलक्स और सूट कमरे हैं। कौन सा प्रकार आपको पसंद है?",
			Services:    "हमारी सेवाओं में 24/7 रूम सर्विस, स्पा, फिटनेस सेंटर, रेस्टोरेंट और कंसीयर्ज सहायता शामिल है।",
			Goodbye:     "आधिरा होटल चुनने के लिए धन्यवाद। आपका दिन शुभ हो!",
		},
	},
	domain.LangTamil: {
		Code:     domain.LangTamil,
		Name:     "Tamil",
		Greeting: "வணக்கம்! ஆதிரா ஹோட்டலுக்கு வரவேற்கிறோம்.",
		Templates: domain.Templates{
			Welcome:     "ஆதிரா ஹோட்டலுக்கு வரவேற்கிறோம்! இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்?",
			Help:        "முன்பதிவு, அறை தகவல், ஹோட்டல் சேவைகள் மற்றும் பொதுவான விசாரணைகளில் நான் உங்களுக்கு உதவ முடியும்.",
			Reservation: "உங்கள் முன்பதிவில் உதவுவதில் மகிழ்ச்சி அடைகிறேன். நீங்கள் எந்த தேதிகளில் தங்க விரும்புகிறீர்கள்?",
			Room:        "எங்களிடம் நவீன வசதிகளுடன் ஸ்டாண்டர்ட், டீலக்ஸ் மற்றும் சூட் அறைகள் உள்ளன. எந்த வகை உங்களுக்கு ஆர்வமாக உள்ளது?",
			Services:    "எங்கள் சேவைகளில் 24/7 அறை சேவை, ஸ்பா, உடற்பயிற்சி மையம், உணவகம் மற்றும் கன்சியர்ஜ் உதவி அடங்கும்.",
			Goodbye:     "ஆதிரா ஹோட்டலைத் தேர்ந்தெடுத்ததற்கு நன்றி. உங்களுக்கு அற்புதமான நாள் இருக்கட்டும்!",
		},
	},
	domain.LangMalayalam: {
		Code:     domain.LangMalayalam,
		Name:     "Malayalam",
		Greeting: "നമസ്കാരം! ആധിരാ ഹോട്ടലിലേക്ക് സ്വാഗതം.",
		Templates: domain.Templates{
			Welcome:     "ആധിരാ ഹോട്ടലിലേക്ക് സ്വാഗതം! ഇന്ന് ഞാൻ നിങ്ങളെ എങ്ങനെ സഹായിക്കാം?",
			Help:        "റിസർവേഷൻ, റൂം വിവരങ്ങൾ, ഹോട്ടൽ സേവനങ്ങൾ, പൊതുവായ അന്വേഷണങ്ങൾ എന്നിവയിൽ എനിക്ക് നിങ്ങളെ സഹായിക്കാൻ കഴിയും.",
			Reservation: "നിങ്ങളുടെ റിസർവേഷനിൽ സഹായിക്കുന്നതിൽ സന്തോഷമുണ്ട്. നിങ്ങൾ ഏത് തീയതികളിൽ താമസിക്കാൻ ആഗ്രഹിക്കുന്നു?",
			Room:        "ആധുനിക സൗകര്യങ്ങളുള്ള സ്റ്റാൻഡേർഡ്, ഡീലക്സ്, സ്യൂട്ട് റൂമുകൾ ഞങ്ങളുടെ പക്കലുണ്ട്. ഏത് തരം നിങ്ങൾക്ക് താൽപ്പര്യമുണ്ട്?",
			Services:    "ഞങ്ങളുടെ സേവനങ്ങളിൽ 24/7 റൂം സർവീസ്, സ്പാ, ഫിറ്റ്നസ് സെന്റർ, റെസ്റ്റോറന്റ്, കൺസിയർജ് സഹായം എന്നിവ ഉൾപ്പെടുന്നു.",
			Goodbye:     "ആധിരാ ഹോട്ടൽ തിരഞ്ഞെടുത്തതിന് നന്ദി. നിങ്ങൾക്ക് അത്ഭുതകരമായ ഒരു ദിവസം ഉണ്ടാകട്ടെ!",
		},
	},
}

// greeting markers, scanned in order
var markers = []struct {
	code  string
	words []string
}{
	{domain.LangHindi, []string{"namaste", "नमस्ते"}},
	{domain.LangTamil, []string{"vanakkam", "வணக்கம்"}},
	{domain.LangMalayalam, []string{"namaskaram", "നമസ്കാരം"}},
}

type topic int

const (
	topicHelp topic = iota
	topicReservation
	topicRoom
	topicServices
	topicGoodbye
)

// topic keywords across all supported languages, scanned in order
var topics = []struct {
	topic topic
	words []string
}{
	{topicHelp, []string{"help", "सहायता", "உதவி", "സഹായം"}},
	{topicReservation, []string{"reservation", "booking", "बुकिंग", "முன்பதிவு", "റിസർവേഷൻ"}},
	{topicRoom, []string{"room", "कमरा", "அறை", "റൂം"}},
	{topicServices, []string{"service", "सेवा", "சேவை", "സേവനം"}},
	{topicGoodbye, []string{"bye", "goodbye", "धन्यवाद", "நன்றி", "നന്ദി"}},
}
