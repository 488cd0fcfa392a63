// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package category

import "strings"

// MinSuggestLength is the content length below which the editor does not ask
// for a suggestion. Suggest itself has no length guard; callers that want
// the threshold use SuggestWithMinLength.
const MinSuggestLength = 50

// keywordSet pairs a category id with the keywords that vote for it.
// Declaration order matters: it breaks score ties, first listed wins.
type keywordSet struct {
	id       string
	keywords []string
}

// keywordTable maps categories to Korean and English keywords. Matching is
// case-insensitive substring containment, each keyword counted at most once.
var keywordTable = []keywordSet{
	{id: "dev", keywords: []string{
		"코드", "개발", "프로그래밍", "api", "버그", "next.js", "react",
		"javascript", "typescript", "함수", "변수", "서버", "배포",
		"git", "github", "프론트엔드", "백엔드", "데이터베이스", "sql",
		"css", "html", "컴포넌트", "라이브러리", "프레임워크", "node.js",
		"npm", "패키지", "에러", "디버깅", "코딩", "알고리즘",
	}},
	{id: "cooking", keywords: []string{
		"요리", "레시피", "맛있", "음식", "재료", "끓이", "볶", "굽",
		"먹", "식당", "맛집", "밥", "국", "반찬", "디저트", "베이킹",
		"케이크", "빵", "파스타", "고기", "야채", "소스", "양념",
	}},
	{id: "study", keywords: []string{
		"공부", "학습", "책", "강의", "시험", "영어", "수학", "자격증",
		"독서", "교육", "수업", "학교", "대학", "논문", "연구", "암기",
		"복습", "예습", "문제풀이", "합격", "불합격", "성적",
	}},
	{id: "exercise", keywords: []string{
		"운동", "헬스", "러닝", "건강", "다이어트", "근육", "달리기",
		"요가", "필라테스", "수영", "등산", "자전거", "조깅", "스트레칭",
		"웨이트", "체중", "감량", "벌크업", "컨디션", "트레이닝",
	}},
}

// Suggest returns the catalog id whose keyword list best matches the text.
// The score of a category is the number of distinct keywords found as
// substrings of the lower-cased input. Ties keep the earlier table entry.
// A top score of zero falls back to the Fallback category.
func Suggest(text string) string {
	lower := strings.ToLower(text)

	best := Fallback
	bestScore := 0
	for _, set := range keywordTable {
		score := 0
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = set.id
			bestScore = score
		}
	}
	return best
}

// SuggestWithMinLength applies the editor's length threshold: text shorter
// than min runes yields the fallback without scoring.
func SuggestWithMinLength(text string, min int) string {
	if len([]rune(text)) < min {
		return Fallback
	}
	return Suggest(text)
}
