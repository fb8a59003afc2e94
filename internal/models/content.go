package models

// HeroContent is the landing page hero section.
type HeroContent struct {
	Title          string `json:"title" validate:"required,max=200"`
	Subtitle       string `json:"subtitle" validate:"required,max=200"`
	Description    string `json:"description" validate:"required,max=1000"`
	WhatsappNumber string `json:"whatsapp_number" validate:"required,numeric,min=8,max=20"`
}

// Feature is one selling point shown on the landing page.
type Feature struct {
	ID          string `json:"id"`
	Icon        string `json:"icon" validate:"required,max=50"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=500"`
}

// Package is a purchasable course tier.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required,max=100"`
	Price       string   `json:"price" validate:"required,max=50"`
	Description string   `json:"description" validate:"required,max=500"`
	Features    []string `json:"features" validate:"required,min=1,dive,max=200"`
	Popular     bool     `json:"popular"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required,max=100"`
	Role    string `json:"role" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=1000"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// FAQ is one frequently-asked-question entry.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question" validate:"required,max=300"`
	Answer   string `json:"answer" validate:"required,max=2000"`
}

// SiteContent is the full content blob persisted as a single record.
type SiteContent struct {
	Hero         HeroContent   `json:"hero"`
	Features     []Feature     `json:"features"`
	Packages     []Package     `json:"packages"`
	Testimonials []Testimonial `json:"testimonials"`
	FAQs         []FAQ         `json:"faqs"`
}

// DefaultContent returns the seed content used when no persisted blob
// exists or the stored one cannot be decoded.
func DefaultContent() *SiteContent {
	return &SiteContent{
		Hero: HeroContent{
			Title:          "Kuasai Seni Trading Cryptocurrency",
			Subtitle:       "Trading Crypto Academy",
			Description:    "Bergabunglah dengan komunitas trader sukses dan pelajari strategi trading yang terbukti menguntungkan. Dari pemula hingga expert, kami siap membimbing perjalanan trading Anda.",
			WhatsappNumber: "6281234567890",
		},
		Features: []Feature{
			{ID: "1", Icon: "TrendingUp", Title: "Analisis Teknikal Profesional", Description: "Pelajari cara membaca chart, indikator, dan pattern trading yang menguntungkan"},
			{ID: "2", Icon: "Target", Title: "Sinyal Trading Akurat", Description: "Dapatkan sinyal trading harian dengan analisis mendalam dan entry/exit point"},
			{ID: "3", Icon: "Shield", Title: "Risk Management", Description: "Kuasai strategi pengelolaan risiko untuk melindungi modal trading Anda"},
			{ID: "4", Icon: "BarChart3", Title: "Analisis Fundamental", Description: "Memahami faktor-faktor yang mempengaruhi pergerakan harga cryptocurrency"},
			{ID: "5", Icon: "Users", Title: "Komunitas Trader", Description: "Bergabung dengan komunitas trader aktif untuk sharing pengalaman dan strategi"},
			{ID: "6", Icon: "Clock", Title: "Support 24/7", Description: "Dapatkan bantuan dan konsultasi trading kapan saja Anda membutuhkannya"},
		},
		Packages: []Package{
			{
				ID:          "1",
				Name:        "Paket Pemula",
				Price:       "Rp 299.000",
				Description: "Cocok untuk trader pemula yang ingin memulai trading crypto",
				Features: []string{
					"Materi dasar trading cryptocurrency",
					"Video tutorial step-by-step",
					"E-book panduan trading",
					"Akses grup Telegram",
					"Support via WhatsApp",
					"Sertifikat completion",
				},
			},
			{
				ID:          "2",
				Name:        "Paket Professional",
				Price:       "Rp 599.000",
				Description: "Untuk trader yang ingin menguasai strategi advanced",
				Features: []string{
					"Semua fitur Paket Pemula",
					"Sinyal trading harian",
					"Live trading session",
					"Analisis teknikal mendalam",
					"Risk management tools",
					"1-on-1 mentoring session",
					"Akses seumur hidup",
				},
				Popular: true,
			},
			{
				ID:          "3",
				Name:        "Paket VIP",
				Price:       "Rp 999.000",
				Description: "Paket lengkap dengan mentoring personal intensif",
				Features: []string{
					"Semua fitur Paket Professional",
					"Personal trading mentor",
					"Portfolio review bulanan",
					"Akses trading bot premium",
					"Webinar eksklusif",
					"Priority support",
					"Profit sharing program",
					"Lifetime updates",
				},
			},
		},
		Testimonials: []Testimonial{
			{ID: "1", Name: "Budi Santoso", Role: "Trader Pemula", Content: "Setelah mengikuti kursus ini, saya berhasil meraih profit konsisten 15% per bulan. Materinya sangat mudah dipahami dan mentornya sangat sabar.", Rating: 5},
			{ID: "2", Name: "Sari Dewi", Role: "Ibu Rumah Tangga", Content: "Awalnya saya takut trading crypto, tapi setelah belajar di sini, sekarang saya bisa trading sambil mengurus rumah. Profit saya sudah bisa untuk tambahan kebutuhan keluarga.", Rating: 5},
			{ID: "3", Name: "Ahmad Rizki", Role: "Karyawan Swasta", Content: "Kursus yang sangat worth it! Dalam 3 bulan, modal trading saya sudah balik dan sekarang profit terus. Recommended banget untuk yang serius mau belajar trading.", Rating: 5},
			{ID: "4", Name: "Maya Putri", Role: "Mahasiswa", Content: "Sebagai mahasiswa, ini investasi terbaik yang pernah saya lakukan. Sekarang saya bisa bayar kuliah sendiri dari hasil trading. Terima kasih Trading Crypto Academy!", Rating: 5},
			{ID: "5", Name: "Doni Pratama", Role: "Entrepreneur", Content: "Strategi yang diajarkan sangat aplikatif dan profitable. Sekarang trading crypto jadi salah satu sumber income utama bisnis saya.", Rating: 4},
			{ID: "6", Name: "Linda Sari", Role: "Freelancer", Content: "Mentornya sangat berpengalaman dan selalu siap membantu. Grup komunitasnya juga aktif sharing tips dan strategi trading terbaru.", Rating: 5},
		},
		FAQs: []FAQ{
			{ID: "1", Question: "Apakah kursus ini cocok untuk pemula yang belum pernah trading?", Answer: "Sangat cocok! Kursus kami dirancang khusus untuk pemula. Kami mulai dari dasar-dasar trading, cara membaca chart, hingga strategi advanced. Materi disusun secara bertahap sehingga mudah dipahami."},
			{ID: "2", Question: "Berapa modal minimum yang dibutuhkan untuk mulai trading?", Answer: "Kami merekomendasikan modal minimum Rp 1.000.000 untuk trading spot dan Rp 500.000 untuk belajar. Namun, Anda bisa mulai dengan modal lebih kecil untuk latihan dan memahami market terlebih dahulu."},
			{ID: "3", Question: "Apakah ada jaminan profit setelah mengikuti kursus?", Answer: "Trading crypto memiliki risiko, sehingga tidak ada jaminan profit 100%. Namun, kami memberikan strategi yang terbukti dan risk management yang baik untuk memaksimalkan peluang profit dan meminimalkan kerugian."},
			{ID: "4", Question: "Bagaimana cara mengakses materi kursus setelah pembayaran?", Answer: "Setelah pembayaran dikonfirmasi, Anda akan mendapatkan akses ke platform pembelajaran online kami. Semua materi video, e-book, dan tools trading dapat diakses 24/7."},
			{ID: "5", Question: "Apakah ada support jika mengalami kesulitan saat belajar?", Answer: "Tentu saja! Kami menyediakan support melalui WhatsApp, grup Telegram, dan untuk paket tertentu ada sesi mentoring 1-on-1. Tim support kami siap membantu Anda kapan saja."},
			{ID: "6", Question: "Berapa lama waktu yang dibutuhkan untuk menguasai trading crypto?", Answer: "Untuk memahami dasar-dasar trading, biasanya membutuhkan 2-4 minggu. Namun untuk menjadi trader yang konsisten profitable, dibutuhkan latihan dan pengalaman 3-6 bulan dengan bimbingan yang tepat."},
			{ID: "7", Question: "Apakah kursus ini mengajarkan trading untuk semua jenis cryptocurrency?", Answer: "Ya, kami mengajarkan trading untuk berbagai cryptocurrency populer seperti Bitcoin, Ethereum, BNB, dan altcoin lainnya. Strategi yang diajarkan dapat diterapkan di berbagai pair trading."},
			{ID: "8", Question: "Bagaimana jika saya tidak puas dengan kursus yang diikuti?", Answer: "Kami memberikan garansi 7 hari money back jika Anda tidak puas dengan kualitas kursus kami. Kepuasan dan kesuksesan member adalah prioritas utama kami."},
		},
	}
}
