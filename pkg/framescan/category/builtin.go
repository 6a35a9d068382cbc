package category

// BuiltinSpecs returns the default disability-coverage taxonomy, in priority
// order: core disability categories first, thematic categories next, the
// general catch-all last so it never shadows a specific category during
// exclusive assignment.
func BuiltinSpecs() []Spec {
	return []Spec{
		{
			Label:        "SEND/Special Schools",
			Pattern:      `(?i)\b(?:SEND|SEN|special needs|special (?:school|education)s?|mainstream schools?|specialist primary|education plans?|teaching assistants?|pupils?|Ofsted|schools?)\b`,
			ExcludeAfter: []string{"of thought"},
		},
		{
			Label:   "Deaf/Hearing",
			Pattern: `(?i)\b(?:deaf|BSL|cochlear|hearing loss|hard of hearing|hearing dogs?|sign language|hearing-impaired|ear ?plugs?|bionic ears|lip-read|tinnitus|ringing in.+ears)\b`,
		},
		{
			Label:   "Blind/Vision",
			Pattern: `(?i)\b(?:blind(?:ness)?|Braille|visually impaired|sight(?: loss| impaired)|vision loss|partially sighted|guide dogs?|lost.+sight|losing sight|blinded)\b`,
		},
		{
			Label:   "Chronic Illness/Pain",
			Pattern: `(?i)\b(?:chronic (?:pain|illness)|fibromyalgia|ME/CFS|chronic fatigue|pain disorder|invisible illness|long covid|cancer|MS|epilepsy|seizure|stroke|dementia|colitis|cystic fibrosis|terminally ill|arthritis|cannot eat or drink|weighed|scales)\b`,
		},
		{
			Label:   "Physical & Mobility",
			Pattern: `(?i)\b(?:wheelchair|paraly[sz](?:e|i|ed|ing)|amputee|physical disabilit(?:y|ies)|spinal|limb|stomas?|one-handed|cerebral palsy|muscular dystrophy|mobility (?:aid|scooter)s?|crutch|prosthetic|quadriplegic|paraplegic|no hands|walk again|surfer)\b`,
		},
		{
			Label:   "Learning Disabilities",
			Pattern: `(?i)\b(?:learning disabilit(?:y|ies)|intellectual disabilit(?:y|ies)|Down['’]s? syndrome|cognitive impairment|Makaton|non-verbal)\b`,
		},
		{
			Label:   "Mental Health & Neuro",
			Pattern: `(?i)\b(?:mental health|anxiety|depression|Tourette['’]s?|bipolar|schizophrenia|psychiatric|PTSD|eating disorder|ADHD|attention deficit|toxic|overdosed|isolating)\b`,
		},
		{
			Label:   "Autism/Neurodiversity",
			Pattern: `(?i)\b(?:autis(?:m|tic)|neurodivers(?:e|ity))\b`,
		},
		{
			Label:   "Benefits, Care & Systemic Issues",
			Pattern: `(?i)\b(?:PIP|DLA|DSA|benefits?|welfare|blue badges?|social care|carers?|council|funding|NHS|Universal Credit|assessment|respite|inquest|ombudsman|care (?:package|home|plan|subsidy|loophole|agency|needs)|day centres?|supported living|telecare|hydrotherapy|Oliver McGowan|foster homes?|hospitals?|policy|government|failures)\b`,
		},
		{
			Label:   "Accessibility & Inclusion",
			Pattern: `(?i)\b(?:accessib(?:le|ility)|inclusive|inclusion|adapt(?:ed|ive)|passport|ramps?|step-free|accessible toilets?|parking (?:bay|permit)s?|boardwalks?|communication boards?|inaccessible|barriers|priority seats?|quiet spaces?|adapt clothes)\b`,
		},
		{
			Label:   "Family & Carer Perspective",
			Pattern: `(?i)\b(?:parent|mum|mom|dad|mother|father|family|son|daughter|children|child|husband|wife)\b`,
		},
		{
			Label:   "Sports, Arts & Culture",
			Pattern: `(?i)\b(?:paralympi(?:an|c|cs)|Special Olympics|Olympic|sports?|football(?:ers)?|rugby|swim|cycl(?:ing)?|ski|race|artist|music|choir|theatre|pianist|actor|model|vogue|Proms|Glastonbury|cheerleading|snooker|goalball|triathlon|cricket|powerchair footballers?|wing walk|culture|gig|circus|Marathon|panto|tennis|para-driver|climbing wall|rower)\b`,
		},
		{
			Label:   "Charity, People & Community",
			Pattern: `(?i)\b(?:charity|fundrais|donation|volunteer|community|campaigner|trust|foundation|MBE|OBE|BEM|honour(?:ed)?|honorary degrees?|Rose Ayling-Ellis|Grey-Thompson|Billy Monger|Sammi Kinghorn|Rosie Jones|Christine McGuiness|Sally Phillips|Adrian Scarborough|pioneers?|tributes?|awards?|Dragons' Den|blue plaques?)\b`,
		},
		{
			Label:   "Animals & Well-being",
			Pattern: `(?i)\b(?:(?:guide|hearing|assistance|service|support|therapy) (?:dogs?|puppy|puppies|animals?|cats?|horses?|cockapoo|donkeys?)|Crufts|miniature horses?|emotional support|guinea pigs?|skunks?|canine|trainee guide dogs?|toy squirrel.*guide dogs?)\b`,
		},
		{
			Label:   "Infrastructure & Transport",
			Pattern: `(?i)\b(?:lifts?|minibus(?:es)?|bus cuts?|footbridges?|pavements?|stations?|TfL|transport|trikes?|housing|home adaptations?)\b`,
		},
		{
			Label:   "Work, Employment & Enterprise",
			Pattern: `(?i)\b(?:cafe|brewery|garden centres?|farms?|work coach(?:es)?|jobs?|workplace|employees?|working|unemployed|employment)\b`,
		},
		{
			Label:   "Personal Stories & Empowerment",
			Pattern: `(?i)\b(?:inspire|inspirational|dream|journey|thriving|empowered|experience|overcame|making most of life|'s story|life-changing|my life|my face|my GP told me|defies|hopeful|mission|letter of thanks)\b`,
		},
		{
			Label:   "General 'Disability' Keyword",
			Pattern: `(?i)\b(?:disabilit(?:y|ies)|disabled|handicap|impairment|vulnerable|additional needs|enable new experiences)\b`,
		},
	}
}

// Builtin compiles the default taxonomy. The specs are fixed, so failure
// indicates a programming error.
func Builtin() *Table {
	t, err := NewTable(BuiltinSpecs())
	if err != nil {
		panic(err)
	}
	return t
}
