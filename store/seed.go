package store

import (
	"time"

	"github.com/ottshare/ott-share-hub/models"
)

// AdminEmail is the seeded back-office account. Its password is "password".
const AdminEmail = "admin@ottshare.com"

// bcrypt("password"), cost 10
const adminPasswordHash = "$2b$10$2Iiq23b4Dan6RuF50vsOMuUh/PLTB0tzaX48dQOPUtQ7CkpAnAmJW"

func seedTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// seed loads the fixed boot snapshot: one admin user, ten OTT services,
// three plans, three posts and two comments.
func (s *Store) seed() {
	s.users = []*models.User{
		{
			ID:           "admin-001",
			Email:        AdminEmail,
			PasswordHash: adminPasswordHash,
			Name:         "관리자",
			Role:         models.RoleAdmin,
			Phone:        "010-1234-5678",
			Status:       models.StatusActive,
			CreatedAt:    seedTime("2024-01-01T00:00:00Z"),
		},
	}

	s.services = []*models.OttService{
		{ID: "netflix", Name: "Netflix", Logo: "🎬", Price: 17000, MaxMembers: 4, Category: "영화/드라마", Color: "#E50914", Description: "전 세계 인기 영화, 드라마, 다큐멘터리"},
		{ID: "disney", Name: "Disney+", Logo: "🏰", Price: 13900, MaxMembers: 4, Category: "영화/드라마", Color: "#113CCF", Description: "디즈니, 픽사, 마블, 스타워즈"},
		{ID: "watcha", Name: "Watcha", Logo: "🎞️", Price: 12900, MaxMembers: 4, Category: "영화/드라마", Color: "#FF0558", Description: "영화 추천 기반 스트리밍 서비스"},
		{ID: "wavve", Name: "Wavve", Logo: "📺", Price: 13900, MaxMembers: 4, Category: "영화/드라마", Color: "#1A1A2E", Description: "KBS, MBC, SBS 통합 플랫폼"},
		{ID: "tving", Name: "TVING", Logo: "📱", Price: 13900, MaxMembers: 4, Category: "영화/드라마", Color: "#FF0143", Description: "CJ ENM 오리지널 콘텐츠"},
		{ID: "coupangplay", Name: "Coupang Play", Logo: "🛒", Price: 7900, MaxMembers: 1, Category: "영화/드라마", Color: "#ED174D", Description: "쿠팡 로켓와우 회원 특별 혜택"},
		{ID: "spotify", Name: "Spotify", Logo: "🎵", Price: 10900, MaxMembers: 6, Category: "음악", Color: "#1DB954", Description: "전 세계 음악 스트리밍"},
		{ID: "youtube", Name: "YouTube Premium", Logo: "▶️", Price: 14900, MaxMembers: 6, Category: "영상", Color: "#FF0000", Description: "광고 없는 유튜브 + 뮤직"},
		{ID: "applemusic", Name: "Apple Music", Logo: "🍎", Price: 10900, MaxMembers: 6, Category: "음악", Color: "#FA243C", Description: "애플 뮤직 스트리밍"},
		{ID: "laftel", Name: "Laftel", Logo: "🎌", Price: 10900, MaxMembers: 2, Category: "애니메이션", Color: "#8B5CF6", Description: "애니메이션 전문 스트리밍"},
	}

	s.plans = []*models.Plan{
		{ID: "basic", Name: "Basic", Price: 9900, Features: []string{"OTT 1개 공유", "기본 지원", "월간 결제"}, MaxOtt: 1},
		{ID: "standard", Name: "Standard", Price: 19900, Features: []string{"OTT 3개 공유", "우선 지원", "파티 매칭", "월간 결제"}, MaxOtt: 3, Popular: true},
		{ID: "premium", Name: "Premium", Price: 29900, Features: []string{"OTT 무제한", "VIP 지원", "파티 매칭", "프리미엄 혜택", "연간 결제 할인"}, MaxOtt: 999},
	}

	s.posts = []*models.Post{
		{
			ID:         "post-001",
			Title:      "OTT Share Hub 오픈 안내",
			Content:    "안녕하세요! OTT Share Hub에 오신 것을 환영합니다.\n\n저희 플랫폼은 넷플릭스, 디즈니+, 왓챠 등 다양한 OTT 서비스를 저렴하게 공유할 수 있는 서비스입니다.\n\n많은 이용 부탁드립니다!",
			Category:   models.CategoryNotice,
			AuthorID:   "admin-001",
			AuthorName: "관리자",
			Views:      156,
			CreatedAt:  seedTime("2024-12-20T09:00:00Z"),
			UpdatedAt:  seedTime("2024-12-20T09:00:00Z"),
		},
		{
			ID:         "post-002",
			Title:      "넷플릭스 파티원 모집합니다!",
			Content:    "넷플릭스 프리미엄 요금제 공유할 분 모집합니다.\n\n현재 2/4명\n월 4,250원으로 이용 가능합니다.\n\n관심 있으신 분 댓글 남겨주세요!",
			Category:   models.CategoryParty,
			AuthorID:   "admin-001",
			AuthorName: "관리자",
			Views:      89,
			CreatedAt:  seedTime("2024-12-21T14:30:00Z"),
			UpdatedAt:  seedTime("2024-12-21T14:30:00Z"),
		},
		{
			ID:         "post-003",
			Title:      "왓챠 vs 웨이브 비교 리뷰",
			Content:    "두 서비스를 3개월간 사용해본 솔직한 후기입니다.\n\n📺 왓챠\n- 장점: 영화 추천 알고리즘이 뛰어남, UI가 깔끔\n- 단점: 국내 드라마 부족\n\n📺 웨이브\n- 장점: 지상파 실시간 시청 가능, 국내 콘텐츠 풍부\n- 단점: 외국 콘텐츠 부족\n\n결론: 영화 좋아하시면 왓챠, 드라마 좋아하시면 웨이브 추천!",
			Category:   models.CategoryReview,
			AuthorID:   "admin-001",
			AuthorName: "관리자",
			Views:      234,
			CreatedAt:  seedTime("2024-12-22T10:15:00Z"),
			UpdatedAt:  seedTime("2024-12-22T10:15:00Z"),
		},
	}

	s.comments = []*models.Comment{
		{
			ID:         "comment-001",
			PostID:     "post-002",
			Content:    "저도 참여하고 싶습니다! 연락주세요~",
			AuthorID:   "admin-001",
			AuthorName: "관리자",
			CreatedAt:  seedTime("2024-12-21T15:00:00Z"),
			UpdatedAt:  seedTime("2024-12-21T15:00:00Z"),
		},
		{
			ID:         "comment-002",
			PostID:     "post-003",
			Content:    "좋은 리뷰 감사합니다! 왓챠 결제해봐야겠어요.",
			AuthorID:   "admin-001",
			AuthorName: "관리자",
			CreatedAt:  seedTime("2024-12-22T11:30:00Z"),
			UpdatedAt:  seedTime("2024-12-22T11:30:00Z"),
		},
	}
}
