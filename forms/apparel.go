package forms

import "github.com/dmitrymomot/formcatalog/core/catalog"

var apparel = catalog.MustNew(ApparelName, []*catalog.Node{
	catalog.Group("formTranslations",
		leaf("formTitle",
			"Apparel Brand Questionnaire",
			"परिधान ब्रांड प्रश्नावली",
			"ஆடை பிராண்ட் கேள்வித்தாள்",
			"దుస్తుల బ్రాండ్ ప్రశ్నావళి",
			"વસ્ત્ર બ્રાન્ડ પ્રશ્નાવલી",
		),
		audio,
		salesperson,
	),
	catalog.Group("section1",
		leaf("title", "Brand Basics", "ब्रांड की बुनियादी जानकारी", "பிராண்ட் அடிப்படைகள்", "బ్రాండ్ ప్రాథమిక వివరాలు", "બ્રાન્ડની મૂળભૂત માહિતી"),
		catalog.Group("brandName",
			leaf("label", "Brand Name", "ब्रांड का नाम", "பிராண்ட் பெயர்", "బ్రాండ్ పేరు", "બ્રાન્ડનું નામ"),
			leaf("placeholder", "e.g. Indigo Threads", "जैसे इंडिगो थ्रेड्स", "எ.கா. இண்டிகோ த்ரெட்ஸ்", "ఉదా. ఇండిగో థ్రెడ్స్", "દા.ત. ઇન્ડિગો થ્રેડ્સ"),
		),
		leaf("category", "What do you make?", "आप क्या बनाते हैं?", "நீங்கள் எதைத் தயாரிக்கிறீர்கள்?", "మీరు ఏమి తయారు చేస్తారు?", "તમે શું બનાવો છો?"),
		catalog.OptionSet("categoryOptions",
			leaf("Ethnicwear", "Ethnic wear", "पारंपरिक परिधान", "பாரம்பரிய ஆடைகள்", "సాంప్రదాయ దుస్తులు", "પરંપરાગત વસ્ત્રો"),
			leaf("Casualwear", "Casual wear", "कैज़ुअल वियर", "சாதாரண ஆடைகள்", "క్యాజువల్ దుస్తులు", "કૅઝ્યુઅલ વસ્ત્રો"),
			leaf("Formalwear", "Formal wear", "औपचारिक परिधान", "முறைசார் ஆடைகள்", "ఫార్మల్ దుస్తులు", "ઔપચારિક વસ્ત્રો"),
			leaf("Kidswear", "Kids wear", "बच्चों के कपड़े", "குழந்தைகள் ஆடைகள்", "పిల్లల దుస్తులు", "બાળકોનાં કપડાં"),
			leaf("Sportswear", "Sportswear", "स्पोर्ट्सवियर", "விளையாட்டு ஆடைகள்", "క్రీడా దుస్తులు", "સ્પોર્ટ્સવેર"),
			leaf("Innerwear", "Innerwear", "इनरवियर", "உள்ளாடைகள்", "లోదుస్తులు", "અંતઃવસ્ત્રો"),
		),
		leaf("fabric", "Main fabric", "मुख्य कपड़ा", "முக்கியத் துணி", "ప్రధాన వస్త్రం", "મુખ્ય કાપડ"),
		catalog.OptionSet("fabricOptions",
			leaf("Cotton", "Cotton", "सूती", "பருத்தி", "నూలు", "સુતરાઉ"),
			leaf("Silk", "Silk", "रेशम", "பட்டு", "పట్టు", "રેશમ"),
			leaf("Linen", "Linen", "लिनन", "லினன்", "లినెన్", "લિનન"),
			leaf("Denim", "Denim", "डेनिम", "டெனிம்", "డెనిమ్", "ડેનિમ"),
			leaf("Synthetic", "Synthetic blends", "सिंथेटिक मिश्रण", "செயற்கை இழைக் கலவை", "సింథటిక్ మిశ్రమాలు", "સિન્થેટિક મિશ્રણ"),
		),
	),
	catalog.Group("section2",
		leaf("title", "Customers", "ग्राहक", "வாடிக்கையாளர்கள்", "వినియోగదారులు", "ગ્રાહકો"),
		leaf("gender",
			"Who wears your clothes?",
			"आपके कपड़े कौन पहनता है?",
			"உங்கள் ஆடைகளை யார் அணிகிறார்கள்?",
			"మీ దుస్తులను ఎవరు ధరిస్తారు?",
			"તમારાં કપડાં કોણ પહેરે છે?",
		),
		catalog.OptionSet("genderOptions",
			leaf("Men", "Men", "पुरुष", "ஆண்கள்", "పురుషులు", "પુરુષો"),
			leaf("Women", "Women", "महिलाएं", "பெண்கள்", "మహిళలు", "સ્ત્રીઓ"),
			leaf("Unisex", "Unisex", "यूनिसेक्स", "இருபாலர்", "యూనిసెక్స్", "યુનિસેક્સ"),
			leaf("Kids", "Kids", "बच्चे", "குழந்தைகள்", "పిల్లలు", "બાળકો"),
		),
		leaf("age",
			"Age of your typical customer",
			"आपके सामान्य ग्राहक की आयु",
			"உங்கள் வழக்கமான வாடிக்கையாளரின் வயது",
			"మీ సాధారణ వినియోగదారుని వయస్సు",
			"તમારા સામાન્ય ગ્રાહકની ઉંમર",
		),
		catalog.OptionSet("ageOptions",
			leaf("18to24", "18–24", "18–24", "18–24", "18–24", "18–24"),
			leaf("25to34", "25–34", "25–34", "25–34", "25–34", "25–34"),
			leaf("35to44", "35–44", "35–44", "35–44", "35–44", "35–44"),
			leaf("45plus", "45 and above", "45 और उससे अधिक", "45 மற்றும் அதற்கு மேல்", "45 మరియు అంతకంటే ఎక్కువ", "45 અને તેથી વધુ"),
		),
		leaf("occasion",
			"When do people wear your products?",
			"लोग आपके उत्पाद कब पहनते हैं?",
			"மக்கள் உங்கள் ஆடைகளை எப்போது அணிகிறார்கள்?",
			"ప్రజలు మీ దుస్తులను ఎప్పుడు ధరిస్తారు?",
			"લોકો તમારાં ઉત્પાદનો ક્યારે પહેરે છે?",
		),
		catalog.OptionSet("occasionOptions",
			leaf("Daily", "Everyday", "रोज़ाना", "அன்றாடம்", "రోజువారీ", "રોજિંદા"),
			leaf("Office", "Office", "ऑफ़िस", "அலுவலகம்", "ఆఫీస్", "ઑફિસ"),
			leaf("Festive", "Festivals", "त्योहार", "பண்டிகைகள்", "పండుగలు", "તહેવારો"),
			leaf("Wedding", "Weddings", "शादियाँ", "திருமணங்கள்", "పెళ్లిళ్లు", "લગ્નો"),
		),
	),
	catalog.Group("section3",
		leaf("title", "Brand Image", "ब्रांड छवि", "பிராண்ட் பிம்பம்", "బ్రాండ్ ఇమేజ్", "બ્રાન્ડ છબી"),
		leaf("style",
			"How would you describe your style?",
			"आप अपनी शैली का वर्णन कैसे करेंगे?",
			"உங்கள் பாணியை எப்படி விவரிப்பீர்கள்?",
			"మీ శైలిని ఎలా వివరిస్తారు?",
			"તમે તમારી શૈલીનું વર્ણન કેવી રીતે કરશો?",
		),
		catalog.OptionSet("styleOptions",
			leaf("Classic", "Classic", "क्लासिक", "பாரம்பரியம்", "క్లాసిక్", "ક્લાસિક"),
			leaf("Trendy", "Trendy", "ट्रेंडी", "நவநாகரிகம்", "ట్రెండీ", "ટ્રેન્ડી"),
			leaf("Minimal", "Minimal", "सादा", "எளிமை", "మినిమల్", "સાદું"),
			leaf("Bold", "Bold", "बोल्ड", "துணிச்சல்", "బోల్డ్", "બોલ્ડ"),
		),
		leaf("pricePoint",
			"Typical price of one garment",
			"एक परिधान की सामान्य कीमत",
			"ஒரு ஆடையின் வழக்கமான விலை",
			"ఒక వస్త్రం యొక్క సాధారణ ధర",
			"એક વસ્ત્રની સામાન્ય કિંમત",
		),
		catalog.OptionSet("priceOptions",
			leaf("Under500", "Under ₹500", "₹500 से कम", "₹500க்குக் கீழ்", "₹500 లోపు", "₹500 થી ઓછી"),
			leaf("500to1500", "₹500–₹1,500", "₹500–₹1,500", "₹500–₹1,500", "₹500–₹1,500", "₹500–₹1,500"),
			leaf("1500to5000", "₹1,500–₹5,000", "₹1,500–₹5,000", "₹1,500–₹5,000", "₹1,500–₹5,000", "₹1,500–₹5,000"),
			leaf("Above5000", "Above ₹5,000", "₹5,000 से अधिक", "₹5,000க்கு மேல்", "₹5,000 పైన", "₹5,000 થી વધુ"),
		),
		catalog.Group("comments",
			leaf("label", "Anything else we should know?", "और कुछ जो हमें जानना चाहिए?", "நாங்கள் தெரிந்துகொள்ள வேண்டிய வேறு ஏதேனும்?", "మేము తెలుసుకోవాల్సింది ఇంకేమైనా ఉందా?", "બીજું કંઈ જે અમારે જાણવું જોઈએ?"),
			leaf("placeholder", "Type or record your answer", "अपना उत्तर लिखें या रिकॉर्ड करें", "உங்கள் பதிலைத் தட்டச்சு செய்யவும் அல்லது பதிவு செய்யவும்", "మీ సమాధానాన్ని టైప్ చేయండి లేదా రికార్డ్ చేయండి", "તમારો જવાબ લખો અથવા રેકોર્ડ કરો"),
		),
	),
}, catalog.WithDescription("Apparel brand questionnaire"))
