package forms

import "github.com/dmitrymomot/formcatalog/core/catalog"

var industrial = catalog.MustNew(IndustrialName, []*catalog.Node{
	catalog.Group("formTranslations",
		leaf("formTitle",
			"Industrial Goods Brand Questionnaire",
			"औद्योगिक उत्पाद ब्रांड प्रश्नावली",
			"தொழில்துறைப் பொருட்கள் பிராண்ட் கேள்வித்தாள்",
			"పారిశ్రామిక వస్తువుల బ్రాండ్ ప్రశ్నావళి",
			"ઔદ્યોગિક માલ બ્રાન્ડ પ્રશ્નાવલી",
		),
		audio,
		salesperson,
	),
	catalog.Group("section1",
		leaf("title", "Company Profile", "कंपनी प्रोफ़ाइल", "நிறுவன விவரம்", "కంపెనీ ప్రొఫైల్", "કંપની પ્રોફાઇલ"),
		catalog.Group("companyName",
			leaf("label", "Company Name", "कंपनी का नाम", "நிறுவனத்தின் பெயர்", "కంపెనీ పేరు", "કંપનીનું નામ"),
			leaf("placeholder", "Registered company name", "पंजीकृत कंपनी का नाम", "பதிவு செய்யப்பட்ட நிறுவனப் பெயர்", "నమోదిత కంపెనీ పేరు", "નોંધાયેલ કંપનીનું નામ"),
		),
		leaf("sector", "Industry sector", "उद्योग क्षेत्र", "தொழில் துறை", "పరిశ్రమ రంగం", "ઉદ્યોગ ક્ષેત્ર"),
		catalog.OptionSet("sectorOptions",
			leaf("Machinery", "Machinery & Equipment", "मशीनरी और उपकरण", "இயந்திரங்கள் & உபகரணங்கள்", "యంత్రాలు & పరికరాలు", "મશીનરી અને સાધનો"),
			leaf("Chemicals", "Chemicals", "रसायन", "வேதிப்பொருட்கள்", "రసాయనాలు", "રસાયણો"),
			leaf("Electrical", "Electrical Components", "विद्युत घटक", "மின் உதிரிபாகங்கள்", "విద్యుత్ భాగాలు", "વિદ્યુત ઘટકો"),
			leaf("Packaging", "Packaging", "पैकेजिंग", "பேக்கேஜிங்", "ప్యాకేజింగ్", "પેકેજિંગ"),
			leaf("Construction", "Construction Materials", "निर्माण सामग्री", "கட்டுமானப் பொருட்கள்", "నిర్మాణ సామగ్రి", "બાંધકામ સામગ્રી"),
		),
		leaf("employees", "Number of employees", "कर्मचारियों की संख्या", "ஊழியர்களின் எண்ணிக்கை", "ఉద్యోగుల సంఖ్య", "કર્મચારીઓની સંખ્યા"),
		catalog.OptionSet("employeeOptions",
			leaf("1to10", "1–10", "1–10", "1–10", "1–10", "1–10"),
			leaf("11to50", "11–50", "11–50", "11–50", "11–50", "11–50"),
			leaf("51to250", "51–250", "51–250", "51–250", "51–250", "51–250"),
			leaf("250plus", "More than 250", "250 से अधिक", "250க்கு மேல்", "250 కంటే ఎక్కువ", "250 થી વધુ"),
		),
	),
	catalog.Group("section2",
		leaf("title", "Buyers", "खरीदार", "வாங்குபவர்கள்", "కొనుగోలుదారులు", "ખરીદદારો"),
		leaf("buyerType",
			"Who buys from you?",
			"आपसे कौन खरीदता है?",
			"உங்களிடம் யார் வாங்குகிறார்கள்?",
			"మీ దగ్గర ఎవరు కొంటారు?",
			"તમારી પાસેથી કોણ ખરીદે છે?",
		),
		catalog.OptionSet("buyerOptions",
			leaf("Manufacturers", "Manufacturers", "निर्माता", "உற்பத்தியாளர்கள்", "తయారీదారులు", "ઉત્પાદકો"),
			leaf("Contractors", "Contractors", "ठेकेदार", "ஒப்பந்ததாரர்கள்", "కాంట్రాక్టర్లు", "કોન્ટ્રાક્ટરો"),
			leaf("Government", "Government bodies", "सरकारी संस्थाएं", "அரசு அமைப்புகள்", "ప్రభుత్వ సంస్థలు", "સરકારી સંસ્થાઓ"),
			leaf("Dealers", "Dealers & Distributors", "डीलर और वितरक", "முகவர்கள் & விநியோகஸ்தர்கள்", "డీలర్లు & పంపిణీదారులు", "ડીલરો અને વિતરકો"),
			leaf("Exporters", "Exporters", "निर्यातक", "ஏற்றுமதியாளர்கள்", "ఎగుమతిదారులు", "નિકાસકારો"),
		),
		leaf("orderSize",
			"Typical order value",
			"सामान्य ऑर्डर मूल्य",
			"வழக்கமான ஆர்டர் மதிப்பு",
			"సాధారణ ఆర్డర్ విలువ",
			"સામાન્ય ઓર્ડર મૂલ્ય",
		),
		catalog.OptionSet("orderSizeOptions",
			leaf("Small", "Under ₹1 lakh", "₹1 लाख से कम", "₹1 லட்சத்துக்குக் கீழ்", "₹1 లక్ష లోపు", "₹1 લાખથી ઓછું"),
			leaf("Medium", "₹1–10 lakh", "₹1–10 लाख", "₹1–10 லட்சம்", "₹1–10 లక్షలు", "₹1–10 લાખ"),
			leaf("Large", "Above ₹10 lakh", "₹10 लाख से अधिक", "₹10 லட்சத்துக்கு மேல்", "₹10 లక్షలు పైన", "₹10 લાખથી વધુ"),
		),
	),
	catalog.Group("section3",
		leaf("title", "Brand Strength", "ब्रांड की ताकत", "பிராண்ட் வலிமை", "బ్రాండ్ బలం", "બ્રાન્ડની શક્તિ"),
		leaf("strengths",
			"Why do buyers choose you?",
			"खरीदार आपको क्यों चुनते हैं?",
			"வாங்குபவர்கள் ஏன் உங்களைத் தேர்ந்தெடுக்கிறார்கள்?",
			"కొనుగోలుదారులు మిమ్మల్ని ఎందుకు ఎంచుకుంటారు?",
			"ખરીદદારો તમને શા માટે પસંદ કરે છે?",
		),
		catalog.OptionSet("strengthOptions",
			leaf("Quality", "Product quality", "उत्पाद की गुणवत्ता", "பொருளின் தரம்", "ఉత్పత్తి నాణ్యత", "ઉત્પાદનની ગુણવત્તા"),
			leaf("Price", "Competitive price", "प्रतिस्पर्धी कीमत", "போட்டி விலை", "పోటీ ధర", "સ્પર્ધાત્મક કિંમત"),
			leaf("Delivery", "On-time delivery", "समय पर डिलीवरी", "சரியான நேரத்தில் விநியோகம்", "సకాలంలో డెలివరీ", "સમયસર ડિલિવરી"),
			leaf("Service", "After-sales service", "बिक्री के बाद सेवा", "விற்பனைக்குப் பிந்தைய சேவை", "అమ్మకం తర్వాత సేవ", "વેચાણ પછીની સેવા"),
			leaf("Certifications", "Certifications (ISO, BIS)", "प्रमाणपत्र (ISO, BIS)", "சான்றிதழ்கள் (ISO, BIS)", "ధృవీకరణలు (ISO, BIS)", "પ્રમાણપત્રો (ISO, BIS)"),
		),
		catalog.Group("comments",
			leaf("label", "Anything else we should know?", "और कुछ जो हमें जानना चाहिए?", "நாங்கள் தெரிந்துகொள்ள வேண்டிய வேறு ஏதேனும்?", "మేము తెలుసుకోవాల్సింది ఇంకేమైనా ఉందా?", "બીજું કંઈ જે અમારે જાણવું જોઈએ?"),
			leaf("placeholder", "Type or record your answer", "अपना उत्तर लिखें या रिकॉर्ड करें", "உங்கள் பதிலைத் தட்டச்சு செய்யவும் அல்லது பதிவு செய்யவும்", "మీ సమాధానాన్ని టైప్ చేయండి లేదా రికార్డ్ చేయండి", "તમારો જવાબ લખો અથવા રેકોર્ડ કરો"),
		),
	),
}, catalog.WithDescription("Industrial goods brand questionnaire"))
