package forms

import "github.com/dmitrymomot/formcatalog/core/catalog"

var general = catalog.MustNew(GeneralName, []*catalog.Node{
	catalog.Group("app",
		leaf("name", "Brand Pulse", "ब्रांड पल्स", "பிராண்ட் பல்ஸ்", "బ్రాండ్ పల్స్", "બ્રાન્ડ પલ્સ"),
		leaf("tagline",
			"Tell us how people see your brand.",
			"हमें बताइए कि लोग आपके ब्रांड को कैसे देखते हैं।",
			"மக்கள் உங்கள் பிராண்டை எப்படிப் பார்க்கிறார்கள் என்று சொல்லுங்கள்.",
			"ప్రజలు మీ బ్రాండ్‌ను ఎలా చూస్తారో మాకు చెప్పండి.",
			"લોકો તમારી બ્રાન્ડને કેવી રીતે જુએ છે તે અમને જણાવો.",
		),
	),
	catalog.Group("nav",
		leaf("home", "Home", "होम", "முகப்பு", "హోమ్", "હોમ"),
		leaf("forms", "Questionnaires", "प्रश्नावली", "கேள்வித்தாள்கள்", "ప్రశ్నావళి", "પ્રશ્નાવલી"),
		leaf("history", "My Submissions", "मेरी प्रविष्टियाँ", "எனது சமர்ப்பிப்புகள்", "నా సమర్పణలు", "મારી રજૂઆતો"),
		leaf("settings", "Settings", "सेटिंग्स", "அமைப்புகள்", "సెట్టింగ్‌లు", "સેટિંગ્સ"),
		leaf("logout", "Log out", "लॉग आउट", "வெளியேறு", "లాగ్ అవుట్", "લૉગ આઉટ"),
	),
	catalog.Group("settings",
		leaf("title", "Settings", "सेटिंग्स", "அமைப்புகள்", "సెట్టింగ్‌లు", "સેટિંગ્સ"),
		leaf("language", "Language", "भाषा", "மொழி", "భాష", "ભાષા"),
		leaf("languageHint",
			"Choose the language for the questionnaire.",
			"प्रश्नावली के लिए भाषा चुनें।",
			"கேள்வித்தாளுக்கான மொழியைத் தேர்ந்தெடுக்கவும்.",
			"ప్రశ్నావళి కోసం భాషను ఎంచుకోండి.",
			"પ્રશ્નાવલી માટે ભાષા પસંદ કરો.",
		),
		catalog.OptionSet("languageOptions",
			leaf("en", "English", "English", "English", "English", "English"),
			leaf("hi", "हिन्दी", "हिन्दी", "हिन्दी", "हिन्दी", "हिन्दी"),
			leaf("ta", "தமிழ்", "தமிழ்", "தமிழ்", "தமிழ்", "தமிழ்"),
			leaf("te", "తెలుగు", "తెలుగు", "తెలుగు", "తెలుగు", "తెలుగు"),
			leaf("gu", "ગુજરાતી", "ગુજરાતી", "ગુજરાતી", "ગુજરાતી", "ગુજરાતી"),
		),
		leaf("save", "Save Changes", "बदलाव सहेजें", "மாற்றங்களைச் சேமி", "మార్పులను సేవ్ చేయండి", "ફેરફારો સાચવો"),
		leaf("saved",
			"Your settings have been saved.",
			"आपकी सेटिंग्स सहेज ली गई हैं।",
			"உங்கள் அமைப்புகள் சேமிக்கப்பட்டன.",
			"మీ సెట్టింగ్‌లు సేవ్ చేయబడ్డాయి.",
			"તમારી સેટિંગ્સ સાચવવામાં આવી છે.",
		),
	),
	catalog.Group("common",
		leaf("submit", "Submit", "जमा करें", "சமர்ப்பி", "సమర్పించండి", "સબમિટ કરો"),
		leaf("next", "Next", "आगे", "அடுத்து", "తదుపరి", "આગળ"),
		leaf("back", "Back", "पीछे", "பின்செல்", "వెనుకకు", "પાછળ"),
		leaf("cancel", "Cancel", "रद्द करें", "ரத்து செய்", "రద్దు చేయండి", "રદ કરો"),
		leaf("required",
			"This field is required.",
			"यह फ़ील्ड आवश्यक है।",
			"இந்தப் புலம் கட்டாயமானது.",
			"ఈ ఫీల్డ్ తప్పనిసరి.",
			"આ ફીલ્ડ જરૂરી છે.",
		),
		leaf("optional", "(optional)", "(वैकल्पिक)", "(விருப்பத்தேர்வு)", "(ఐచ్ఛికం)", "(વૈકલ્પિક)"),
		leaf("selectPlaceholder", "Select an option", "एक विकल्प चुनें", "ஒரு விருப்பத்தைத் தேர்ந்தெடுக்கவும்", "ఒక ఎంపికను ఎంచుకోండి", "એક વિકલ્પ પસંદ કરો"),
		leaf("selectAll", "Select all that apply", "जो लागू हों वे सभी चुनें", "பொருந்தும் அனைத்தையும் தேர்ந்தெடுக்கவும்", "వర్తించే అన్నింటినీ ఎంచుకోండి", "લાગુ પડતા બધા પસંદ કરો"),
		leaf("loading", "Loading…", "लोड हो रहा है…", "ஏற்றுகிறது…", "లోడ్ అవుతోంది…", "લોડ થઈ રહ્યું છે…"),
		leaf("progress",
			"Step %{current} of %{total}",
			"चरण %{current} / %{total}",
			"படி %{current} / %{total}",
			"దశ %{current} / %{total}",
			"પગલું %{current} / %{total}",
		),
		leaf("submitting", "Submitting…", "जमा हो रहा है…", "சமர்ப்பிக்கப்படுகிறது…", "సమర్పిస్తోంది…", "સબમિટ થઈ રહ્યું છે…"),
		leaf("submitSuccess",
			"Thank you! Your response has been recorded.",
			"धन्यवाद! आपका उत्तर दर्ज कर लिया गया है।",
			"நன்றி! உங்கள் பதில் பதிவு செய்யப்பட்டது.",
			"ధన్యవాదాలు! మీ సమాధానం నమోదు చేయబడింది.",
			"આભાર! તમારો જવાબ નોંધાઈ ગયો છે.",
		),
		leaf("submitError",
			"Something went wrong. Please try again.",
			"कुछ गलत हो गया। कृपया फिर से प्रयास करें।",
			"ஏதோ தவறு நடந்தது. மீண்டும் முயற்சிக்கவும்.",
			"ఏదో పొరపాటు జరిగింది. దయచేసి మళ్లీ ప్రయత్నించండి.",
			"કંઈક ખોટું થયું. કૃપા કરીને ફરી પ્રયાસ કરો.",
		),
	),
	catalog.Group("formTranslations",
		leaf("formTitle",
			"FMCG Brand Questionnaire",
			"एफएमसीजी ब्रांड प्रश्नावली",
			"FMCG பிராண்ட் கேள்வித்தாள்",
			"FMCG బ్రాండ్ ప్రశ్నావళి",
			"FMCG બ્રાન્ડ પ્રશ્નાવલી",
		),
		audio,
		salesperson,
	),
	catalog.Group("section1",
		leaf("title", "Brand Basics", "ब्रांड की बुनियादी जानकारी", "பிராண்ட் அடிப்படைகள்", "బ్రాండ్ ప్రాథమిక వివరాలు", "બ્રાન્ડની મૂળભૂત માહિતી"),
		leaf("description",
			"Tell us about your brand and what it sells.",
			"अपने ब्रांड और उसके उत्पादों के बारे में बताएं।",
			"உங்கள் பிராண்ட் மற்றும் அது விற்கும் பொருட்களைப் பற்றிச் சொல்லுங்கள்.",
			"మీ బ్రాండ్ గురించి, అది ఏమి అమ్ముతుందో చెప్పండి.",
			"તમારી બ્રાન્ડ અને તે શું વેચે છે તે વિશે જણાવો.",
		),
		catalog.Group("brandName",
			leaf("label", "Brand Name", "ब्रांड का नाम", "பிராண்ட் பெயர்", "బ్రాండ్ పేరు", "બ્રાન્ડનું નામ"),
			leaf("placeholder", "e.g. Sunrise Foods", "जैसे सनराइज़ फ़ूड्स", "எ.கா. சன்ரைஸ் ஃபுட்ஸ்", "ఉదా. సన్‌రైజ్ ఫుడ్స్", "દા.ત. સનરાઇઝ ફૂડ્સ"),
		),
		catalog.Group("companyName",
			leaf("label", "Company Name", "कंपनी का नाम", "நிறுவனத்தின் பெயர்", "కంపెనీ పేరు", "કંપનીનું નામ"),
			leaf("placeholder", "Registered company name", "पंजीकृत कंपनी का नाम", "பதிவு செய்யப்பட்ட நிறுவனப் பெயர்", "నమోదిత కంపెనీ పేరు", "નોંધાયેલ કંપનીનું નામ"),
		),
		leaf("category", "Product Category", "उत्पाद श्रेणी", "பொருள் வகை", "ఉత్పత్తి వర్గం", "ઉત્પાદન શ્રેણી"),
		catalog.OptionSet("categoryOptions",
			leaf("FoodAndStaples", "Food & Staples", "खाद्य और राशन", "உணவு & மளிகை", "ఆహారం & నిత్యావసరాలు", "ખોરાક અને કરિયાણું"),
			leaf("Beverages", "Beverages", "पेय पदार्थ", "பானங்கள்", "పానీయాలు", "પીણાં"),
			leaf("Snacks", "Snacks & Confectionery", "स्नैक्स और मिठाइयाँ", "தின்பண்டங்கள் & இனிப்புகள்", "స్నాక్స్ & మిఠాయిలు", "નાસ્તો અને મીઠાઈ"),
			leaf("Dairy", "Dairy", "डेयरी", "பால் பொருட்கள்", "పాల ఉత్పత్తులు", "ડેરી"),
			leaf("PersonalCare", "Personal Care", "व्यक्तिगत देखभाल", "தனிநபர் பராமரிப்பு", "వ్యక్తిగత సంరక్షణ", "વ્યક્તિગત સંભાળ"),
			leaf("HomeCare", "Home Care", "घरेलू देखभाल", "வீட்டுப் பராமரிப்பு", "గృహ సంరక్షణ", "ઘરની સંભાળ"),
		),
		catalog.Group("launchYear",
			leaf("label", "Year of Launch", "लॉन्च का वर्ष", "அறிமுகமான ஆண்டு", "ప్రారంభించిన సంవత్సరం", "લૉન્ચનું વર્ષ"),
			leaf("placeholder", "YYYY", "YYYY", "YYYY", "YYYY", "YYYY"),
		),
	),
	catalog.Group("section2",
		leaf("title", "Distribution & Pricing", "वितरण और मूल्य", "விநியோகம் & விலை", "పంపిణీ & ధర", "વિતરણ અને કિંમત"),
		leaf("channels",
			"Where do customers buy your products?",
			"ग्राहक आपके उत्पाद कहाँ से खरीदते हैं?",
			"வாடிக்கையாளர்கள் உங்கள் பொருட்களை எங்கே வாங்குகிறார்கள்?",
			"వినియోగదారులు మీ ఉత్పత్తులను ఎక్కడ కొంటారు?",
			"ગ્રાહકો તમારાં ઉત્પાદનો ક્યાંથી ખરીદે છે?",
		),
		catalog.OptionSet("channelOptions",
			leaf("KiranaStores", "Kirana / General Stores", "किराना / जनरल स्टोर", "மளிகைக் கடைகள்", "కిరాణా / జనరల్ స్టోర్లు", "કરિયાણા / જનરલ સ્ટોર"),
			leaf("Supermarkets", "Supermarkets", "सुपरमार्केट", "பல்பொருள் அங்காடிகள்", "సూపర్‌మార్కెట్లు", "સુપરમાર્કેટ"),
			leaf("Ecommerce", "Online Marketplaces", "ऑनलाइन मार्केटप्लेस", "இணைய சந்தைகள்", "ఆన్‌లైన్ మార్కెట్‌ప్లేస్‌లు", "ઓનલાઇન માર્કેટપ્લેસ"),
			leaf("QuickCommerce", "Quick Commerce Apps", "क्विक कॉमर्स ऐप्स", "விரைவு வணிகச் செயலிகள்", "క్విక్ కామర్స్ యాప్‌లు", "ક્વિક કોમર્સ એપ્સ"),
			leaf("Wholesale", "Wholesale / Distributors", "थोक / वितरक", "மொத்த விற்பனை / விநியோகஸ்தர்கள்", "టోకు / పంపిణీదారులు", "જથ્થાબંધ / વિતરકો"),
		),
		leaf("pricePoint",
			"How is your product priced compared to others?",
			"दूसरों की तुलना में आपके उत्पाद की कीमत कैसी है?",
			"மற்றவற்றுடன் ஒப்பிடும்போது உங்கள் பொருளின் விலை எப்படி?",
			"ఇతరులతో పోలిస్తే మీ ఉత్పత్తి ధర ఎలా ఉంది?",
			"બીજાની સરખામણીમાં તમારા ઉત્પાદનની કિંમત કેવી છે?",
		),
		catalog.OptionSet("priceOptions",
			leaf("Economy", "Economy", "किफायती", "மலிவு", "తక్కువ ధర", "સસ્તું"),
			leaf("MidRange", "Mid-range", "मध्यम", "நடுத்தர", "మధ్యస్థ", "મધ્યમ"),
			leaf("Premium", "Premium", "प्रीमियम", "பிரீமியம்", "ప్రీమియం", "પ્રીમિયમ"),
		),
	),
	catalog.Group("section3",
		leaf("title", "Target Audience", "लक्षित दर्शक", "இலக்கு வாடிக்கையாளர்கள்", "లక్ష్య వినియోగదారులు", "લક્ષિત ગ્રાહકો"),
		leaf("gender",
			"Who is your brand mainly for?",
			"आपका ब्रांड मुख्य रूप से किसके लिए है?",
			"உங்கள் பிராண்ட் முக்கியமாக யாருக்கானது?",
			"మీ బ్రాండ్ ప్రధానంగా ఎవరి కోసం?",
			"તમારી બ્રાન્ડ મુખ્યત્વે કોના માટે છે?",
		),
		catalog.OptionSet("genderOptions",
			leaf("Men", "Men", "पुरुष", "ஆண்கள்", "పురుషులు", "પુરુષો"),
			leaf("Women", "Women", "महिलाएं", "பெண்கள்", "మహిళలు", "સ્ત્રીઓ"),
			leaf("Everyone", "Everyone", "सभी", "அனைவரும்", "అందరూ", "બધા"),
		),
		leaf("age",
			"Which age group buys your product the most?",
			"कौन सा आयु वर्ग आपका उत्पाद सबसे ज़्यादा खरीदता है?",
			"எந்த வயதுப் பிரிவினர் உங்கள் பொருளை அதிகம் வாங்குகிறார்கள்?",
			"ఏ వయస్సు వారు మీ ఉత్పత్తిని ఎక్కువగా కొంటారు?",
			"કયો વય જૂથ તમારું ઉત્પાદન સૌથી વધુ ખરીદે છે?",
		),
		catalog.OptionSet("ageOptions",
			leaf("Under18", "Under 18", "18 से कम", "18 வயதுக்குக் கீழ்", "18 లోపు", "18 થી ઓછા"),
			leaf("18to24", "18–24", "18–24", "18–24", "18–24", "18–24"),
			leaf("25to34", "25–34", "25–34", "25–34", "25–34", "25–34"),
			leaf("35to44", "35–44", "35–44", "35–44", "35–44", "35–44"),
			leaf("45to54", "45–54", "45–54", "45–54", "45–54", "45–54"),
			leaf("55plus", "55 and above", "55 और उससे अधिक", "55 மற்றும் அதற்கு மேல்", "55 మరియు అంతకంటే ఎక్కువ", "55 અને તેથી વધુ"),
		),
		leaf("location",
			"Where do most of your customers live?",
			"आपके अधिकांश ग्राहक कहाँ रहते हैं?",
			"உங்கள் வாடிக்கையாளர்களில் பெரும்பாலோர் எங்கே வசிக்கிறார்கள்?",
			"మీ వినియోగదారుల్లో ఎక్కువ మంది ఎక్కడ నివసిస్తారు?",
			"તમારા મોટાભાગના ગ્રાહકો ક્યાં રહે છે?",
		),
		catalog.OptionSet("locationOptions",
			leaf("Metro", "Metro cities", "महानगर", "பெருநகரங்கள்", "మెట్రో నగరాలు", "મહાનગરો"),
			leaf("Tier2", "Tier 2 / Tier 3 cities", "टियर 2 / टियर 3 शहर", "இரண்டாம் / மூன்றாம் நிலை நகரங்கள்", "టైర్ 2 / టైర్ 3 నగరాలు", "ટિયર 2 / ટિયર 3 શહેરો"),
			leaf("Rural", "Villages and small towns", "गाँव और छोटे कस्बे", "கிராமங்கள் மற்றும் சிறு நகரங்கள்", "గ్రామాలు మరియు చిన్న పట్టణాలు", "ગામડાં અને નાનાં નગરો"),
		),
	),
	catalog.Group("section4",
		leaf("title", "Brand Personality", "ब्रांड का व्यक्तित्व", "பிராண்ட் ஆளுமை", "బ్రాండ్ వ్యక్తిత్వం", "બ્રાન્ડનું વ્યક્તિત્વ"),
		leaf("tone",
			"Which words best describe your brand?",
			"कौन से शब्द आपके ब्रांड का सबसे अच्छा वर्णन करते हैं?",
			"உங்கள் பிராண்டை எந்தச் சொற்கள் சிறப்பாக விவரிக்கின்றன?",
			"మీ బ్రాండ్‌ను ఏ పదాలు బాగా వివరిస్తాయి?",
			"કયા શબ્દો તમારી બ્રાન્ડનું શ્રેષ્ઠ વર્ણન કરે છે?",
		),
		catalog.OptionSet("toneOptions",
			leaf("Friendly", "Friendly", "मिलनसार", "நட்பான", "స్నేహపూర్వక", "મૈત્રીપૂર્ણ"),
			leaf("Trustworthy", "Trustworthy", "भरोसेमंद", "நம்பகமான", "నమ్మదగిన", "વિશ્વસનીય"),
			leaf("Premium", "Premium", "प्रीमियम", "பிரீமியம்", "ప్రీమియం", "પ્રીમિયમ"),
			leaf("Traditional", "Traditional", "पारंपरिक", "பாரம்பரியமான", "సాంప్రదాయ", "પરંપરાગત"),
			leaf("Modern", "Modern", "आधुनिक", "நவீனமான", "ఆధునిక", "આધુનિક"),
			leaf("Playful", "Playful", "चंचल", "விளையாட்டுத்தனமான", "సరదాగా", "રમતિયાળ"),
		),
		leaf("feeling",
			"How should customers feel after using your product?",
			"आपका उत्पाद इस्तेमाल करने के बाद ग्राहकों को कैसा महसूस होना चाहिए?",
			"உங்கள் பொருளைப் பயன்படுத்திய பின் வாடிக்கையாளர்கள் எப்படி உணர வேண்டும்?",
			"మీ ఉత్పత్తిని వాడిన తర్వాత వినియోగదారులు ఎలా అనుభూతి చెందాలి?",
			"તમારું ઉત્પાદન વાપર્યા પછી ગ્રાહકોને કેવું લાગવું જોઈએ?",
		),
		catalog.OptionSet("feelingOptions",
			leaf("Refreshed", "I feel refreshed", "मैं तरोताज़ा महसूस करता हूँ", "நான் புத்துணர்ச்சியாக உணர்கிறேன்", "నేను తాజాగా అనుభూతి చెందుతున్నాను", "હું તાજગી અનુભવું છું"),
			leaf("Confident", "I feel confident", "मैं आत्मविश्वास महसूस करता हूँ", "நான் தன்னம்பிக்கையாக உணர்கிறேன்", "నాకు ఆత్మవిశ్వాసం కలుగుతుంది", "હું આત્મવિશ્વાસ અનુભવું છું"),
			leaf("CaredFor", "I feel cared for", "मुझे अपनापन महसूस होता है", "நான் அக்கறையுடன் கவனிக்கப்படுவதாக உணர்கிறேன்", "నన్ను శ్రద్ధగా చూసుకున్నట్టు అనిపిస్తుంది", "મારી કાળજી લેવાય છે એવું લાગે છે"),
			leaf("Elevated", "I feel elevated", "I feel elevated", "I feel elevated", "I feel elevated", "I feel elevated"),
		),
		catalog.Group("competitors",
			leaf("label", "Main competitors", "मुख्य प्रतिस्पर्धी", "முக்கியப் போட்டியாளர்கள்", "ప్రధాన పోటీదారులు", "મુખ્ય સ્પર્ધકો"),
			leaf("placeholder", "List up to three brands", "अधिकतम तीन ब्रांड लिखें", "அதிகபட்சம் மூன்று பிராண்டுகளைக் குறிப்பிடவும்", "గరిష్టంగా మూడు బ్రాండ్లను పేర్కొనండి", "વધુમાં વધુ ત્રણ બ્રાન્ડ લખો"),
		),
	),
	catalog.Group("section5",
		leaf("title", "Final Thoughts", "अंतिम विचार", "இறுதிக் கருத்துகள்", "చివరి ఆలోచనలు", "અંતિમ વિચારો"),
		catalog.Group("comments",
			leaf("label", "Anything else we should know?", "और कुछ जो हमें जानना चाहिए?", "நாங்கள் தெரிந்துகொள்ள வேண்டிய வேறு ஏதேனும்?", "మేము తెలుసుకోవాల్సింది ఇంకేమైనా ఉందా?", "બીજું કંઈ જે અમારે જાણવું જોઈએ?"),
			leaf("placeholder", "Type or record your answer", "अपना उत्तर लिखें या रिकॉर्ड करें", "உங்கள் பதிலைத் தட்டச்சு செய்யவும் அல்லது பதிவு செய்யவும்", "మీ సమాధానాన్ని టైప్ చేయండి లేదా రికార్డ్ చేయండి", "તમારો જવાબ લખો અથવા રેકોર્ડ કરો"),
		),
		leaf("consent",
			"I agree to be contacted about this survey.",
			"मैं इस सर्वेक्षण के बारे में संपर्क किए जाने के लिए सहमत हूँ।",
			"இந்தக் கணக்கெடுப்பு குறித்து என்னைத் தொடர்புகொள்ள ஒப்புக்கொள்கிறேன்.",
			"ఈ సర్వే గురించి నన్ను సంప్రదించడానికి నేను అంగీకరిస్తున్నాను.",
			"આ સર્વે વિશે મારો સંપર્ક કરવામાં આવે તે માટે હું સંમત છું.",
		),
		leaf("thankYou",
			"Thank you for sharing your brand story with us.",
			"अपने ब्रांड की कहानी हमारे साथ साझा करने के लिए धन्यवाद।",
			"உங்கள் பிராண்ட் கதையை எங்களுடன் பகிர்ந்ததற்கு நன்றி.",
			"మీ బ్రాండ్ కథను మాతో పంచుకున్నందుకు ధన్యవాదాలు.",
			"તમારી બ્રાન્ડની વાર્તા અમારી સાથે શેર કરવા બદલ આભાર.",
		),
	),
}, catalog.WithDescription("App chrome and the FMCG brand questionnaire"))
