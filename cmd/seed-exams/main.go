package main

import (
	"context"
	"fmt"
	"time"

	"github.com/eligify/eligify-backend/internal/config"
	"github.com/eligify/eligify-backend/internal/database"
	"github.com/eligify/eligify-backend/internal/logger"
	"github.com/eligify/eligify-backend/internal/model"
	"github.com/eligify/eligify-backend/internal/repository"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	examRepo := repository.NewExamRepository(pool)

	fmt.Printf("=== Seeding %d Exams ===\n", len(catalog))

	for i := range catalog {
		if err := examRepo.Create(ctx, &catalog[i]); err != nil {
			log.Fatal().Err(err).Int("exam_id", catalog[i].ExamID).Msg("Failed to seed exam")
		}
		fmt.Printf("Seeded %d: %s\n", catalog[i].ExamID, catalog[i].ExamName)
	}

	// Drop the stale snapshot so the next request republishes it.
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, catalog snapshot not invalidated")
	} else {
		defer rdb.Close()
		if err := rdb.Del(ctx, config.CacheKey.CatalogSnapshotKey()).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to invalidate catalog snapshot")
		}
	}

	fmt.Println("Done.")
}

var catalog = []model.ExamCriteria{
	{
		ExamID: 101, ExamName: "JEE Main (Engineering)", ConductingBody: "NTA",
		ExamLevel: "National", ExamMode: "Online", Website: "jeemain.nta.nic.in",
		FeeGenEws: 1000, TotalDurationMins: 180,
		MinAge: 17, MaxAge: 25, Min10Percent: 60, Min12Percent: 75, MinUgCgpa: 0,
		Subjects:  []string{"Physics", "Chemistry", "Mathematics"},
		Documents: []string{"Caste Certificate", "Domicile", "Photo", "Signature", "Aadhar"},
	},
	{
		ExamID: 102, ExamName: "NEET UG (Medical)", ConductingBody: "NTA",
		ExamLevel: "National", ExamMode: "Offline", Website: "neet.nta.nic.in",
		FeeGenEws: 1500, TotalDurationMins: 200,
		MinAge: 17, MaxAge: 99, Min10Percent: 50, Min12Percent: 60, MinUgCgpa: 0,
		Subjects:  []string{"Physics", "Chemistry", "Botany", "Zoology"},
		Documents: []string{"Caste Certificate", "Domicile", "Birth Certificate", "Photo", "Signature", "Aadhar"},
	},
	{
		ExamID: 103, ExamName: "UPSC CSE (Civil Services)", ConductingBody: "UPSC",
		ExamLevel: "National", ExamMode: "Offline", Website: "upsc.gov.in",
		FeeGenEws: 100, TotalDurationMins: 180,
		MinAge: 21, MaxAge: 32, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 6.0,
		Subjects:  []string{"General Studies I", "General Studies II (CSAT)"},
		Documents: []string{"Caste Certificate", "Photo", "Signature", "Aadhar", "UG Degree"},
	},
	{
		ExamID: 104, ExamName: "GATE (Engineering PG)", ConductingBody: "IITs/IISc",
		ExamLevel: "National", ExamMode: "Online", Website: "gate.iitk.ac.in",
		FeeGenEws: 1800, TotalDurationMins: 180,
		MinAge: 20, MaxAge: 99, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 6.5,
		Subjects:  []string{"General Aptitude", "Engineering Mathematics", "Core Engineering Branch Subject"},
		Documents: []string{"UG Degree/Marksheet", "Photo", "Signature", "Aadhar"},
	},
	{
		ExamID: 105, ExamName: "CLAT (Law Entrance)", ConductingBody: "Consortium of NLUs",
		ExamLevel: "National", ExamMode: "Offline", Website: "consortiumofnlus.ac.in",
		FeeGenEws: 4000, TotalDurationMins: 120,
		MinAge: 17, MaxAge: 99, Min10Percent: 50, Min12Percent: 45, MinUgCgpa: 0,
		Subjects:  []string{"English Language", "Current Affairs", "Legal Reasoning", "Logical Reasoning"},
		Documents: []string{"12th Marksheet", "Caste Certificate", "Photo", "Signature"},
	},
	{
		ExamID: 106, ExamName: "BITSAT (Engineering)", ConductingBody: "BITS Pilani",
		ExamLevel: "National", ExamMode: "Online", Website: "bitsadmission.com",
		FeeGenEws: 3400, TotalDurationMins: 180,
		MinAge: 17, MaxAge: 99, Min10Percent: 60, Min12Percent: 75, MinUgCgpa: 0,
		Subjects:  []string{"PCM/PCB", "English Proficiency", "Logical Reasoning"},
		Documents: []string{"12th Marksheet", "Photo", "Signature"},
	},
	{
		ExamID: 107, ExamName: "UGEE (IIIT Hyderabad)", ConductingBody: "IIIT Hyderabad",
		ExamLevel: "National", ExamMode: "Online", Website: "iiit.ac.in/admissions/ug",
		FeeGenEws: 2500, TotalDurationMins: 180,
		MinAge: 17, MaxAge: 99, Min10Percent: 60, Min12Percent: 60, MinUgCgpa: 0,
		Subjects:  []string{"Subject Proficiency Test", "Research Aptitude Test"},
		Documents: []string{"12th Marksheet", "Domicile", "Photo"},
	},
	{
		ExamID: 108, ExamName: "MHT CET (Engineering/Pharmacy)", ConductingBody: "CET Cell Maharashtra",
		ExamLevel: "State", ExamMode: "Online", Website: "mahacet.org",
		FeeGenEws: 800, TotalDurationMins: 180,
		MinAge: 17, MaxAge: 99, Min10Percent: 50, Min12Percent: 45, MinUgCgpa: 0,
		Subjects:  []string{"Physics", "Chemistry", "Mathematics/Biology"},
		Documents: []string{"Domicile", "Caste Certificate", "Photo"},
	},
	{
		ExamID: 109, ExamName: "CUET-UG (Common Univ. Entrance)", ConductingBody: "NTA",
		ExamLevel: "National", ExamMode: "Online", Website: "nta.ac.in/cuet",
		FeeGenEws: 750, TotalDurationMins: 180,
		MinAge: 17, MaxAge: 99, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 0,
		Subjects:  []string{"Language", "Domain Subjects", "General Test"},
		Documents: []string{"12th Marksheet", "Photo", "Signature"},
	},
	{
		ExamID: 110, ExamName: "NDA (National Defence Academy)", ConductingBody: "UPSC",
		ExamLevel: "National", ExamMode: "Offline", Website: "upsc.gov.in/nda",
		FeeGenEws: 100, TotalDurationMins: 300,
		MinAge: 16, MaxAge: 19, Min10Percent: 50, Min12Percent: 60, MinUgCgpa: 0,
		Subjects:  []string{"Mathematics", "General Ability Test (GAT)"},
		Documents: []string{"Birth Certificate", "Photo", "Aadhar"},
	},
	{
		ExamID: 111, ExamName: "IAT (IISER Aptitude Test)", ConductingBody: "IISERs",
		ExamLevel: "National", ExamMode: "Online", Website: "iiseradmission.in",
		FeeGenEws: 2000, TotalDurationMins: 180,
		MinAge: 17, MaxAge: 99, Min10Percent: 60, Min12Percent: 60, MinUgCgpa: 0,
		Subjects:  []string{"Physics", "Chemistry", "Biology", "Mathematics"},
		Documents: []string{"12th Marksheet", "Photo", "Aadhar"},
	},
	{
		ExamID: 112, ExamName: "ISI Entrance (Maths/Stats)", ConductingBody: "Indian Statistical Institute",
		ExamLevel: "National", ExamMode: "Offline", Website: "isical.ac.in",
		FeeGenEws: 1500, TotalDurationMins: 120,
		MinAge: 17, MaxAge: 99, Min10Percent: 70, Min12Percent: 75, MinUgCgpa: 0,
		Subjects:  []string{"Mathematics", "Statistics", "English"},
		Documents: []string{"12th Marksheet", "Photo"},
	},
	{
		ExamID: 113, ExamName: "UCEED (Design Entrance)", ConductingBody: "IIT Bombay",
		ExamLevel: "National", ExamMode: "Online/Offline", Website: "uceed.iitb.ac.in",
		FeeGenEws: 3500, TotalDurationMins: 180,
		MinAge: 17, MaxAge: 99, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 0,
		Subjects:  []string{"Aptitude", "Observation", "Design Sketching"},
		Documents: []string{"12th Marksheet", "Photo", "Signature"},
	},
	{
		ExamID: 114, ExamName: "AFCAT (Air Force Common Aptitude)", ConductingBody: "IAF",
		ExamLevel: "National", ExamMode: "Online", Website: "afcat.cdac.in",
		FeeGenEws: 250, TotalDurationMins: 120,
		MinAge: 20, MaxAge: 24, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 6.0,
		Subjects:  []string{"General Awareness", "Verbal Ability", "Numerical Ability", "Reasoning"},
		Documents: []string{"UG Degree", "Photo", "Aadhar"},
	},
	{
		ExamID: 115, ExamName: "CDS (Combined Defence Services)", ConductingBody: "UPSC",
		ExamLevel: "National", ExamMode: "Offline", Website: "upsc.gov.in/cds",
		FeeGenEws: 200, TotalDurationMins: 360,
		MinAge: 19, MaxAge: 24, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 6.0,
		Subjects:  []string{"English", "General Knowledge", "Elementary Mathematics"},
		Documents: []string{"UG Degree", "Photo", "Aadhar"},
	},
	{
		ExamID: 116, ExamName: "NEET-PG (Medical PG)", ConductingBody: "NBE",
		ExamLevel: "National", ExamMode: "Online", Website: "nbe.edu.in",
		FeeGenEws: 5000, TotalDurationMins: 210,
		MinAge: 22, MaxAge: 99, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 7.0,
		Subjects:  []string{"Clinical Subjects", "Pre/Para-Clinical Subjects"},
		Documents: []string{"MBBS Degree", "Caste Certificate", "Photo"},
	},
	{
		ExamID: 117, ExamName: "CUET-PG (Common Univ. Entrance PG)", ConductingBody: "NTA",
		ExamLevel: "National", ExamMode: "Online", Website: "nta.ac.in/cuetpg",
		FeeGenEws: 800, TotalDurationMins: 105,
		MinAge: 20, MaxAge: 99, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 5.5,
		Subjects:  []string{"General Section", "Domain Specific Knowledge"},
		Documents: []string{"UG Degree/Marksheet", "Photo", "Signature"},
	},
	{
		ExamID: 118, ExamName: "SSC-CGL (Govt. Job)", ConductingBody: "SSC",
		ExamLevel: "National", ExamMode: "Online", Website: "ssc.nic.in",
		FeeGenEws: 100, TotalDurationMins: 120,
		MinAge: 18, MaxAge: 32, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 5.0,
		Subjects:  []string{"Quantitative Aptitude", "General Intelligence", "English Comprehension"},
		Documents: []string{"UG Degree", "Photo", "Aadhar"},
	},
	{
		ExamID: 119, ExamName: "VITEEE (Engineering)", ConductingBody: "VIT",
		ExamLevel: "University", ExamMode: "Online", Website: "viteee.vit.ac.in",
		FeeGenEws: 1350, TotalDurationMins: 150,
		MinAge: 17, MaxAge: 99, Min10Percent: 60, Min12Percent: 60, MinUgCgpa: 0,
		Subjects:  []string{"PCM/PCB", "English", "Aptitude"},
		Documents: []string{"12th Marksheet", "Photo", "Signature"},
	},
	{
		ExamID: 120, ExamName: "SRMJEE (Engineering)", ConductingBody: "SRM Institute",
		ExamLevel: "University", ExamMode: "Online", Website: "srmist.edu.in",
		FeeGenEws: 1200, TotalDurationMins: 150,
		MinAge: 17, MaxAge: 99, Min10Percent: 50, Min12Percent: 50, MinUgCgpa: 0,
		Subjects:  []string{"Physics", "Chemistry", "Mathematics/Biology"},
		Documents: []string{"12th Marksheet", "Photo"},
	},
}
