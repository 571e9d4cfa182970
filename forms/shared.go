package forms

import "github.com/dmitrymomot/formcatalog/core/catalog"

// Key paths of the subtrees every catalog shares. They are declared once
// below and the same nodes are placed into each catalog.
const (
	AudioPath       = "formTranslations.audio"
	SalespersonPath = "formTranslations.salesperson"
)

// SharedSubtrees lists the key paths that must stay identical across all catalogs.
var SharedSubtrees = []string{AudioPath, SalespersonPath}

// leaf declares a text node; arguments follow the locale order en, hi, ta, te, gu.
func leaf(key, en, hi, ta, te, gu string) *catalog.Node {
	return catalog.Leaf(key, catalog.Entry(en, hi, ta, te, gu))
}

var audio = catalog.Group("audio",
	leaf("title",
		"Voice Note",
		"वॉइस नोट",
		"குரல் குறிப்பு",
		"వాయిస్ నోట్",
		"વૉઇસ નોટ",
	),
	leaf("description",
		"Record your answer in your own words.",
		"अपने शब्दों में अपना उत्तर रिकॉर्ड करें।",
		"உங்கள் பதிலை உங்கள் சொந்த வார்த்தைகளில் பதிவு செய்யுங்கள்.",
		"మీ సమాధానాన్ని మీ సొంత మాటల్లో రికార్డ్ చేయండి.",
		"તમારો જવાબ તમારા પોતાના શબ્દોમાં રેકોર્ડ કરો.",
	),
	leaf("startRecording",
		"Start Recording",
		"रिकॉर्डिंग शुरू करें",
		"பதிவைத் தொடங்கு",
		"రికార్డింగ్ ప్రారంభించండి",
		"રેકોર્ડિંગ શરૂ કરો",
	),
	leaf("stopRecording",
		"Stop Recording",
		"रिकॉर्डिंग रोकें",
		"பதிவை நிறுத்து",
		"రికార్డింగ్ ఆపండి",
		"રેકોર્ડિંગ બંધ કરો",
	),
	leaf("play",
		"Play",
		"चलाएं",
		"இயக்கு",
		"ప్లే చేయండి",
		"ચલાવો",
	),
	leaf("recordAgain",
		"Record Again",
		"फिर से रिकॉर्ड करें",
		"மீண்டும் பதிவு செய்",
		"మళ్లీ రికార్డ్ చేయండి",
		"ફરીથી રેકોર્ડ કરો",
	),
	leaf("delete",
		"Delete Recording",
		"रिकॉर्डिंग हटाएं",
		"பதிவை நீக்கு",
		"రికార్డింగ్ తొలగించండి",
		"રેકોર્ડિંગ કાઢી નાખો",
	),
	leaf("duration",
		"Duration: %{seconds}s",
		"अवधि: %{seconds} सेकंड",
		"நேரம்: %{seconds} வினாடிகள்",
		"వ్యవధి: %{seconds} సెకన్లు",
		"સમયગાળો: %{seconds} સેકન્ડ",
	),
	catalog.Group("status",
		leaf("idle",
			"Press 'Start Recording' to begin.",
			"शुरू करने के लिए 'रिकॉर्डिंग शुरू करें' दबाएं।",
			"தொடங்க 'பதிவைத் தொடங்கு' அழுத்தவும்.",
			"ప్రారంభించడానికి 'రికార్డింగ్ ప్రారంభించండి' నొక్కండి.",
			"શરૂ કરવા માટે 'રેકોર્ડિંગ શરૂ કરો' દબાવો.",
		),
		leaf("recording",
			"Recording… speak clearly.",
			"रिकॉर्डिंग जारी है… स्पष्ट बोलें।",
			"பதிவு செய்யப்படுகிறது… தெளிவாகப் பேசவும்.",
			"రికార్డ్ అవుతోంది… స్పష్టంగా మాట్లాడండి.",
			"રેકોર્ડિંગ ચાલુ છે… સ્પષ્ટ બોલો.",
		),
		leaf("stopped",
			"Recording saved. You can play it back or record again.",
			"रिकॉर्डिंग सहेजी गई। आप इसे सुन सकते हैं या फिर से रिकॉर्ड कर सकते हैं।",
			"பதிவு சேமிக்கப்பட்டது. நீங்கள் அதைக் கேட்கலாம் அல்லது மீண்டும் பதிவு செய்யலாம்.",
			"రికార్డింగ్ సేవ్ చేయబడింది. మీరు దాన్ని వినవచ్చు లేదా మళ్లీ రికార్డ్ చేయవచ్చు.",
			"રેકોર્ડિંગ સાચવવામાં આવ્યું. તમે તેને સાંભળી શકો છો અથવા ફરીથી રેકોર્ડ કરી શકો છો.",
		),
		leaf("uploading",
			"Uploading your recording…",
			"आपकी रिकॉर्डिंग अपलोड हो रही है…",
			"உங்கள் பதிவு பதிவேற்றப்படுகிறது…",
			"మీ రికార్డింగ్ అప్‌లోడ్ అవుతోంది…",
			"તમારું રેકોર્ડિંગ અપલોડ થઈ રહ્યું છે…",
		),
		leaf("uploaded",
			"Recording uploaded.",
			"रिकॉर्डिंग अपलोड हो गई।",
			"பதிவு பதிவேற்றப்பட்டது.",
			"రికార్డింగ్ అప్‌లోడ్ అయింది.",
			"રેકોર્ડિંગ અપલોડ થયું.",
		),
	),
	catalog.Group("errors",
		leaf("permissionDenied",
			"Microphone access was denied. Please allow it in your browser settings.",
			"माइक्रोफ़ोन की अनुमति नहीं मिली। कृपया ब्राउज़र सेटिंग्स में इसकी अनुमति दें।",
			"மைக்ரோஃபோன் அணுகல் மறுக்கப்பட்டது. உங்கள் உலாவி அமைப்புகளில் அனுமதிக்கவும்.",
			"మైక్రోఫోన్ అనుమతి నిరాకరించబడింది. దయచేసి మీ బ్రౌజర్ సెట్టింగ్‌లలో అనుమతించండి.",
			"માઇક્રોફોનની ઍક્સેસ નકારવામાં આવી. કૃપા કરીને બ્રાઉઝર સેટિંગ્સમાં તેની મંજૂરી આપો.",
		),
		leaf("unsupported",
			"Audio recording is not supported on this device.",
			"इस डिवाइस पर ऑडियो रिकॉर्डिंग समर्थित नहीं है।",
			"இந்தச் சாதனத்தில் ஒலிப்பதிவு ஆதரிக்கப்படவில்லை.",
			"ఈ పరికరంలో ఆడియో రికార్డింగ్‌కు మద్దతు లేదు.",
			"આ ઉપકરણ પર ઑડિયો રેકોર્ડિંગ સમર્થિત નથી.",
		),
		leaf("uploadFailed",
			"Upload failed. Please try again.",
			"अपलोड विफल रहा। कृपया फिर से प्रयास करें।",
			"பதிவேற்றம் தோல்வியடைந்தது. மீண்டும் முயற்சிக்கவும்.",
			"అప్‌లోడ్ విఫలమైంది. దయచేసి మళ్లీ ప్రయత్నించండి.",
			"અપલોડ નિષ્ફળ થયું. કૃપા કરીને ફરી પ્રયાસ કરો.",
		),
		leaf("tooShort",
			"Recording is too short. Please speak for at least %{seconds} seconds.",
			"रिकॉर्डिंग बहुत छोटी है। कृपया कम से कम %{seconds} सेकंड बोलें।",
			"பதிவு மிகவும் குறுகியது. குறைந்தது %{seconds} வினாடிகள் பேசவும்.",
			"రికార్డింగ్ చాలా చిన్నది. దయచేసి కనీసం %{seconds} సెకన్లు మాట్లాడండి.",
			"રેકોર્ડિંગ ખૂબ ટૂંકું છે. કૃપા કરીને ઓછામાં ઓછું %{seconds} સેકન્ડ બોલો.",
		),
	),
)

var salesperson = catalog.Group("salesperson",
	leaf("title",
		"Salesperson Details",
		"विक्रेता विवरण",
		"விற்பனையாளர் விவரங்கள்",
		"సేల్స్‌పర్సన్ వివరాలు",
		"સેલ્સપર્સન વિગતો",
	),
	leaf("description",
		"To be filled in by the field sales representative.",
		"यह भाग फील्ड बिक्री प्रतिनिधि द्वारा भरा जाए।",
		"இதை கள விற்பனை பிரதிநிதி நிரப்ப வேண்டும்.",
		"దీనిని ఫీల్డ్ సేల్స్ ప్రతినిధి పూరించాలి.",
		"આ ભાગ ફીલ્ડ સેલ્સ પ્રતિનિધિએ ભરવો.",
	),
	catalog.Group("name",
		leaf("label",
			"Salesperson Name",
			"विक्रेता का नाम",
			"விற்பனையாளர் பெயர்",
			"సేల్స్‌పర్సన్ పేరు",
			"સેલ્સપર્સનનું નામ",
		),
		leaf("placeholder",
			"Enter your full name",
			"अपना पूरा नाम लिखें",
			"உங்கள் முழுப் பெயரை உள்ளிடவும்",
			"మీ పూర్తి పేరు నమోదు చేయండి",
			"તમારું પૂરું નામ લખો",
		),
	),
	catalog.Group("phone",
		leaf("label",
			"Mobile Number",
			"मोबाइल नंबर",
			"கைபேசி எண்",
			"మొబైల్ నంబర్",
			"મોબાઇલ નંબર",
		),
		leaf("placeholder",
			"10-digit mobile number",
			"10 अंकों का मोबाइल नंबर",
			"10 இலக்க கைபேசி எண்",
			"10 అంకెల మొబైల్ నంబర్",
			"10 અંકનો મોબાઇલ નંબર",
		),
		leaf("error",
			"Enter a valid 10-digit mobile number.",
			"कृपया सही 10 अंकों का मोबाइल नंबर दर्ज करें।",
			"சரியான 10 இலக்க கைபேசி எண்ணை உள்ளிடவும்.",
			"సరైన 10 అంకెల మొబైల్ నంబర్ నమోదు చేయండి.",
			"માન્ય 10 અંકનો મોબાઇલ નંબર દાખલ કરો.",
		),
	),
	catalog.Group("employeeId",
		leaf("label",
			"Employee ID",
			"कर्मचारी आईडी",
			"ஊழியர் அடையாள எண்",
			"ఉద్యోగి ఐడీ",
			"કર્મચારી આઈડી",
		),
		leaf("placeholder",
			"e.g. SP-1024",
			"जैसे SP-1024",
			"எ.கா. SP-1024",
			"ఉదా. SP-1024",
			"દા.ત. SP-1024",
		),
	),
	catalog.Group("storeName",
		leaf("label",
			"Store / Outlet Name",
			"दुकान / आउटलेट का नाम",
			"கடை / விற்பனை நிலையத்தின் பெயர்",
			"దుకాణం / అవుట్‌లెట్ పేరు",
			"દુકાન / આઉટલેટનું નામ",
		),
		leaf("placeholder",
			"Where did this conversation take place?",
			"यह बातचीत कहाँ हुई?",
			"இந்த உரையாடல் எங்கு நடந்தது?",
			"ఈ సంభాషణ ఎక్కడ జరిగింది?",
			"આ વાતચીત ક્યાં થઈ?",
		),
	),
	leaf("region",
		"Sales Region",
		"बिक्री क्षेत्र",
		"விற்பனை மண்டலம்",
		"అమ్మకాల ప్రాంతం",
		"વેચાણ વિસ્તાર",
	),
	catalog.OptionSet("regionOptions",
		leaf("North", "North", "उत्तर", "வடக்கு", "ఉత్తరం", "ઉત્તર"),
		leaf("South", "South", "दक्षिण", "தெற்கு", "దక్షిణం", "દક્ષિણ"),
		leaf("East", "East", "पूर्व", "கிழக்கு", "తూర్పు", "પૂર્વ"),
		leaf("West", "West", "पश्चिम", "மேற்கு", "పశ్చిమం", "પશ્ચિમ"),
		leaf("Central", "Central", "मध्य", "மத்திய", "మధ్య", "મધ્ય"),
	),
	leaf("visitDate",
		"Date of Visit",
		"मुलाकात की तारीख",
		"வருகை தேதி",
		"సందర్శన తేదీ",
		"મુલાકાતની તારીખ",
	),
)
