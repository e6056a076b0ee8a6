// Package content supplies the site's read-only content: the fixed news
// and ranking lists and the events list loaded at startup. Accessors
// return fresh copies so no caller can mutate shared state.
package content

import "github.com/zambiatennis/ztaweb/models"

// News posts highlighting recent programmes and achievements. Dates are
// approximate and used for ordering posts chronologically.
var sampleNews = []models.NewsPost{
	{
		Title:   "IFS Invitational Youth Tournament showcases rising stars",
		Date:    "2025-08-02",
		Summary: "The U12 & U14 IFS Invitational at Kansanshi Golf Estate delivered exciting matches and underscored the association's commitment to youth development.",
		Content: "Hosted at the picturesque Kansanshi Golf Estate in Solwezi, the IFS Invitational Tournament for under-12 and under-14 boys and girls brought together promising talent from across Zambia. " +
			"Sponsored by International Facilities Services (IFS) in collaboration with Kansanshi Mining Project, the event offered high-quality playing opportunities and emphasised sportsmanship and passion for the game. " +
			"Match results and standings were shared throughout the tournament, and parents, coaches and officials applauded the young athletes' dedication.",
	},
	{
		Title:   "Copperbelt Open finals produce new champions",
		Date:    "2025-08-04",
		Summary: "After four days of thrilling tennis in Kitwe, the Copperbelt Open crowned new champions in both the men's and women's divisions.",
		Content: "The Copperbelt Open, hosted at Nkana Tennis Club, culminated in a dramatic finals day. " +
			"Spectators witnessed intense rallies and tactical play as emerging players seized their moment to lift the national titles. " +
			"The tournament showcased the depth of talent in Zambian tennis and provided valuable ranking points ahead of forthcoming national events.",
	},
	{
		Title:   "Ladies trials set stage for 2024 All Africa Games",
		Date:    "2023-12-27",
		Summary: "Trials at Nkana Tennis Club determined which female players would represent Zambia at the All Africa Games in Accra.",
		Content: "In the closing days of 2023, the association organised women's trials to select representatives for the 2024 All Africa Games in Ghana. " +
			"The round-robin format produced competitive matches and highlighted the growing depth of women's tennis in Zambia. " +
			"The trials underline the association's commitment to equal opportunities and preparing athletes for continental competition.",
	},
	{
		Title:   "MIKA Hotels invests in seventh international championship",
		Date:    "2023-10-20",
		Summary: "A £500,000 sponsorship from MIKA Hotels boosted the 7th MIKA Tennis Championships, attracting players from nine countries.",
		Content: "Held at Lusaka Tennis Club, the 2023 MIKA International Championships drew around 120 participants from Zambia and eight neighbouring countries. " +
			"The significant sponsorship from MIKA Hotels enabled higher prize money and improved facilities, enhancing the event's stature. " +
			"The tournament provided a platform for local athletes to test themselves against regional competitors and showcased Zambia as a growing hub for tennis in Southern Africa.",
	},
	{
		Title:   "Junior champions crowned at Mike Mambwe Memorial",
		Date:    "2023-09-20",
		Summary: "Thrilling finals at the Mike Mambwe Junior Championship saw young players claim titles in the U10 and U14 categories.",
		Content: "The Mike Mambwe Junior Championship in Ndola celebrated promising talent across the under-10 and under-14 divisions. " +
			"In the U10 final, a three-set battle kept spectators on edge before a determined young player clinched victory in a match tie-break. " +
			"The U14 girls' final was equally competitive, with the champion prevailing 6-4, 7-5 after an impressive run through the draw. " +
			"These grassroots events reflect the association's dedication to nurturing junior players and providing competitive opportunities across age groups.",
	},
	{
		Title:   "Association recognised for successful 2024 AGM",
		Date:    "2024-12-16",
		Summary: "The National Olympic Committee of Zambia congratulated the association on its well-organised Annual General Meeting.",
		Content: "In December 2024 the National Olympic Committee of Zambia (NOCZ) publicly congratulated the Zambia Tennis Association on hosting a successful Annual General Meeting. " +
			"The recognition reflects improved governance under the current executive committee and encourages continued collaboration with stakeholders to grow the sport nationwide.",
	},
}

// News returns a copy of the fixed news list.
func News() []models.NewsPost {
	out := make([]models.NewsPost, len(sampleNews))
	copy(out, sampleNews)
	return out
}
