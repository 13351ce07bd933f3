package openrtb2

import (
	"bytes"
	"fmt"
	"strconv"
)

// ContentCategory represents the IAB's contextual taxonomy for
// categorization. Standard IDs have been adopted to easily support the
// communication of primary and secondary categories for various objects.
//
// On the wire a category is carried as its IAB code string (e.g. "IAB1-6").
// The table is derived from the IAB Quality Assurance Guidelines (QAG).
type ContentCategory string

const (
	ContentCategoryIAB1     ContentCategory = "IAB1"     // Arts & Entertainment
	ContentCategoryIAB1_1   ContentCategory = "IAB1-1"   // Books & Literature
	ContentCategoryIAB1_2   ContentCategory = "IAB1-2"   // Celebrity Fan/Gossip
	ContentCategoryIAB1_3   ContentCategory = "IAB1-3"   // Fine Art
	ContentCategoryIAB1_4   ContentCategory = "IAB1-4"   // Humor
	ContentCategoryIAB1_5   ContentCategory = "IAB1-5"   // Movies
	ContentCategoryIAB1_6   ContentCategory = "IAB1-6"   // Music
	ContentCategoryIAB1_7   ContentCategory = "IAB1-7"   // Television
	ContentCategoryIAB2     ContentCategory = "IAB2"     // Automotive
	ContentCategoryIAB2_1   ContentCategory = "IAB2-1"   // Auto Parts
	ContentCategoryIAB2_2   ContentCategory = "IAB2-2"   // Auto Repair
	ContentCategoryIAB2_3   ContentCategory = "IAB2-3"   // Buying/Selling Cars
	ContentCategoryIAB2_4   ContentCategory = "IAB2-4"   // Car Culture
	ContentCategoryIAB2_5   ContentCategory = "IAB2-5"   // Certified Pre-Owned
	ContentCategoryIAB2_6   ContentCategory = "IAB2-6"   // Convertible
	ContentCategoryIAB2_7   ContentCategory = "IAB2-7"   // Coupe
	ContentCategoryIAB2_8   ContentCategory = "IAB2-8"   // Crossover
	ContentCategoryIAB2_9   ContentCategory = "IAB2-9"   // Diesel
	ContentCategoryIAB2_10  ContentCategory = "IAB2-10"  // Electric Vehicle
	ContentCategoryIAB2_11  ContentCategory = "IAB2-11"  // Hatchback
	ContentCategoryIAB2_12  ContentCategory = "IAB2-12"  // Hybrid
	ContentCategoryIAB2_13  ContentCategory = "IAB2-13"  // Luxury
	ContentCategoryIAB2_14  ContentCategory = "IAB2-14"  // MiniVan
	ContentCategoryIAB2_15  ContentCategory = "IAB2-15"  // Motorcycles
	ContentCategoryIAB2_16  ContentCategory = "IAB2-16"  // Off-Road Vehicles
	ContentCategoryIAB2_17  ContentCategory = "IAB2-17"  // Performance Vehicles
	ContentCategoryIAB2_18  ContentCategory = "IAB2-18"  // Pickup
	ContentCategoryIAB2_19  ContentCategory = "IAB2-19"  // Road-Side Assistance
	ContentCategoryIAB2_20  ContentCategory = "IAB2-20"  // Sedan
	ContentCategoryIAB2_21  ContentCategory = "IAB2-21"  // Trucks & Accessories
	ContentCategoryIAB2_22  ContentCategory = "IAB2-22"  // Vintage Cars
	ContentCategoryIAB2_23  ContentCategory = "IAB2-23"  // Wagon
	ContentCategoryIAB3     ContentCategory = "IAB3"     // Business
	ContentCategoryIAB3_1   ContentCategory = "IAB3-1"   // Advertising
	ContentCategoryIAB3_2   ContentCategory = "IAB3-2"   // Agriculture
	ContentCategoryIAB3_3   ContentCategory = "IAB3-3"   // Biotech/Biomedical
	ContentCategoryIAB3_4   ContentCategory = "IAB3-4"   // Business Software
	ContentCategoryIAB3_5   ContentCategory = "IAB3-5"   // Construction
	ContentCategoryIAB3_6   ContentCategory = "IAB3-6"   // Forestry
	ContentCategoryIAB3_7   ContentCategory = "IAB3-7"   // Government
	ContentCategoryIAB3_8   ContentCategory = "IAB3-8"   // Green Solutions
	ContentCategoryIAB3_9   ContentCategory = "IAB3-9"   // Human Resources
	ContentCategoryIAB3_10  ContentCategory = "IAB3-10"  // Logistics
	ContentCategoryIAB3_11  ContentCategory = "IAB3-11"  // Marketing
	ContentCategoryIAB3_12  ContentCategory = "IAB3-12"  // Metals
	ContentCategoryIAB4     ContentCategory = "IAB4"     // Careers
	ContentCategoryIAB4_1   ContentCategory = "IAB4-1"   // Career Planning
	ContentCategoryIAB4_2   ContentCategory = "IAB4-2"   // College
	ContentCategoryIAB4_3   ContentCategory = "IAB4-3"   // Financial  Aid
	ContentCategoryIAB4_4   ContentCategory = "IAB4-4"   // Job Fairs
	ContentCategoryIAB4_5   ContentCategory = "IAB4-5"   // Job Search
	ContentCategoryIAB4_6   ContentCategory = "IAB4-6"   // Resume Writing/Advice
	ContentCategoryIAB4_7   ContentCategory = "IAB4-7"   // Nursing
	ContentCategoryIAB4_8   ContentCategory = "IAB4-8"   // Scholarships
	ContentCategoryIAB4_9   ContentCategory = "IAB4-9"   // Telecommuting
	ContentCategoryIAB4_10  ContentCategory = "IAB4-10"  // U.S. Military
	ContentCategoryIAB4_11  ContentCategory = "IAB4-11"  // Career Advice
	ContentCategoryIAB5     ContentCategory = "IAB5"     // Education
	ContentCategoryIAB5_1   ContentCategory = "IAB5-1"   // 7-12 Education
	ContentCategoryIAB5_2   ContentCategory = "IAB5-2"   // Adult Education
	ContentCategoryIAB5_3   ContentCategory = "IAB5-3"   // Art History
	ContentCategoryIAB5_4   ContentCategory = "IAB5-4"   // College Administration
	ContentCategoryIAB5_5   ContentCategory = "IAB5-5"   // College Life
	ContentCategoryIAB5_6   ContentCategory = "IAB5-6"   // Distance Learning
	ContentCategoryIAB5_7   ContentCategory = "IAB5-7"   // English as a 2nd Language
	ContentCategoryIAB5_8   ContentCategory = "IAB5-8"   // Language Learning
	ContentCategoryIAB5_9   ContentCategory = "IAB5-9"   // Graduate School
	ContentCategoryIAB5_10  ContentCategory = "IAB5-10"  // Homeschooling
	ContentCategoryIAB5_11  ContentCategory = "IAB5-11"  // Homework/Study Tips
	ContentCategoryIAB5_12  ContentCategory = "IAB5-12"  // K-6 Educators
	ContentCategoryIAB5_13  ContentCategory = "IAB5-13"  // Private School
	ContentCategoryIAB5_14  ContentCategory = "IAB5-14"  // Special Education
	ContentCategoryIAB5_15  ContentCategory = "IAB5-15"  // Studying Business
	ContentCategoryIAB6     ContentCategory = "IAB6"     // Family & Parenting
	ContentCategoryIAB6_1   ContentCategory = "IAB6-1"   // Adoption
	ContentCategoryIAB6_2   ContentCategory = "IAB6-2"   // Babies & Toddlers
	ContentCategoryIAB6_3   ContentCategory = "IAB6-3"   // Daycare/Pre School
	ContentCategoryIAB6_4   ContentCategory = "IAB6-4"   // Family Internet
	ContentCategoryIAB6_5   ContentCategory = "IAB6-5"   // Parenting - K-6 Kids
	ContentCategoryIAB6_6   ContentCategory = "IAB6-6"   // Parenting teens
	ContentCategoryIAB6_7   ContentCategory = "IAB6-7"   // Pregnancy
	ContentCategoryIAB6_8   ContentCategory = "IAB6-8"   // Special Needs Kids
	ContentCategoryIAB6_9   ContentCategory = "IAB6-9"   // Eldercare
	ContentCategoryIAB7     ContentCategory = "IAB7"     // Health & Fitness
	ContentCategoryIAB7_1   ContentCategory = "IAB7-1"   // Exercise
	ContentCategoryIAB7_2   ContentCategory = "IAB7-2"   // A.D.D.
	ContentCategoryIAB7_3   ContentCategory = "IAB7-3"   // AIDS/HIV
	ContentCategoryIAB7_4   ContentCategory = "IAB7-4"   // Allergies
	ContentCategoryIAB7_5   ContentCategory = "IAB7-5"   // Alternative Medicine
	ContentCategoryIAB7_6   ContentCategory = "IAB7-6"   // Arthritis
	ContentCategoryIAB7_7   ContentCategory = "IAB7-7"   // Asthma
	ContentCategoryIAB7_8   ContentCategory = "IAB7-8"   // Autism/PDD
	ContentCategoryIAB7_9   ContentCategory = "IAB7-9"   // Bipolar Disorder
	ContentCategoryIAB7_10  ContentCategory = "IAB7-10"  // Brain Tumor
	ContentCategoryIAB7_11  ContentCategory = "IAB7-11"  // Cancer
	ContentCategoryIAB7_12  ContentCategory = "IAB7-12"  // Cholesterol
	ContentCategoryIAB7_13  ContentCategory = "IAB7-13"  // Chronic Fatigue Syndrome
	ContentCategoryIAB7_14  ContentCategory = "IAB7-14"  // Chronic Pain
	ContentCategoryIAB7_15  ContentCategory = "IAB7-15"  // Cold & Flu
	ContentCategoryIAB7_16  ContentCategory = "IAB7-16"  // Deafness
	ContentCategoryIAB7_17  ContentCategory = "IAB7-17"  // Dental Care
	ContentCategoryIAB7_18  ContentCategory = "IAB7-18"  // Depression
	ContentCategoryIAB7_19  ContentCategory = "IAB7-19"  // Dermatology
	ContentCategoryIAB7_20  ContentCategory = "IAB7-20"  // Diabetes
	ContentCategoryIAB7_21  ContentCategory = "IAB7-21"  // Epilepsy
	ContentCategoryIAB7_22  ContentCategory = "IAB7-22"  // GERD/Acid Reflux
	ContentCategoryIAB7_23  ContentCategory = "IAB7-23"  // Headaches/Migraines
	ContentCategoryIAB7_24  ContentCategory = "IAB7-24"  // Heart Disease
	ContentCategoryIAB7_25  ContentCategory = "IAB7-25"  // Herbs for Health
	ContentCategoryIAB7_26  ContentCategory = "IAB7-26"  // Holistic Healing
	ContentCategoryIAB7_27  ContentCategory = "IAB7-27"  // IBS/Crohn's Disease
	ContentCategoryIAB7_28  ContentCategory = "IAB7-28"  // Incest/Abuse Support
	ContentCategoryIAB7_29  ContentCategory = "IAB7-29"  // Incontinence
	ContentCategoryIAB7_30  ContentCategory = "IAB7-30"  // Infertility
	ContentCategoryIAB7_31  ContentCategory = "IAB7-31"  // Men's Health
	ContentCategoryIAB7_32  ContentCategory = "IAB7-32"  // Nutrition
	ContentCategoryIAB7_33  ContentCategory = "IAB7-33"  // Orthopedics
	ContentCategoryIAB7_34  ContentCategory = "IAB7-34"  // Panic/Anxiety Disorders
	ContentCategoryIAB7_35  ContentCategory = "IAB7-35"  // Pediatrics
	ContentCategoryIAB7_36  ContentCategory = "IAB7-36"  // Physical Therapy
	ContentCategoryIAB7_37  ContentCategory = "IAB7-37"  // Psychology/Psychiatry
	ContentCategoryIAB7_38  ContentCategory = "IAB7-38"  // Senor Health
	ContentCategoryIAB7_39  ContentCategory = "IAB7-39"  // Sexuality
	ContentCategoryIAB7_40  ContentCategory = "IAB7-40"  // Sleep Disorders
	ContentCategoryIAB7_41  ContentCategory = "IAB7-41"  // Smoking Cessation
	ContentCategoryIAB7_42  ContentCategory = "IAB7-42"  // Substance Abuse
	ContentCategoryIAB7_43  ContentCategory = "IAB7-43"  // Thyroid Disease
	ContentCategoryIAB7_44  ContentCategory = "IAB7-44"  // Weight Loss
	ContentCategoryIAB7_45  ContentCategory = "IAB7-45"  // Women's Health
	ContentCategoryIAB8     ContentCategory = "IAB8"     // Food & Drink
	ContentCategoryIAB8_1   ContentCategory = "IAB8-1"   // American Cuisine
	ContentCategoryIAB8_2   ContentCategory = "IAB8-2"   // Barbecues & Grilling
	ContentCategoryIAB8_3   ContentCategory = "IAB8-3"   // Cajun/Creole
	ContentCategoryIAB8_4   ContentCategory = "IAB8-4"   // Chinese Cuisine
	ContentCategoryIAB8_5   ContentCategory = "IAB8-5"   // Cocktails/Beer
	ContentCategoryIAB8_6   ContentCategory = "IAB8-6"   // Coffee/Tea
	ContentCategoryIAB8_7   ContentCategory = "IAB8-7"   // Cuisine-Specific
	ContentCategoryIAB8_8   ContentCategory = "IAB8-8"   // Desserts & Baking
	ContentCategoryIAB8_9   ContentCategory = "IAB8-9"   // Dining Out
	ContentCategoryIAB8_10  ContentCategory = "IAB8-10"  // Food Allergies
	ContentCategoryIAB8_11  ContentCategory = "IAB8-11"  // French Cuisine
	ContentCategoryIAB8_12  ContentCategory = "IAB8-12"  // Health/Lowfat Cooking
	ContentCategoryIAB8_13  ContentCategory = "IAB8-13"  // Italian Cuisine
	ContentCategoryIAB8_14  ContentCategory = "IAB8-14"  // Japanese Cuisine
	ContentCategoryIAB8_15  ContentCategory = "IAB8-15"  // Mexican Cuisine
	ContentCategoryIAB8_16  ContentCategory = "IAB8-16"  // Vegan
	ContentCategoryIAB8_17  ContentCategory = "IAB8-17"  // Vegetarian
	ContentCategoryIAB8_18  ContentCategory = "IAB8-18"  // Wine
	ContentCategoryIAB9     ContentCategory = "IAB9"     // Hobbies & Interests
	ContentCategoryIAB9_1   ContentCategory = "IAB9-1"   // Art/Technology
	ContentCategoryIAB9_2   ContentCategory = "IAB9-2"   // Arts & Crafts
	ContentCategoryIAB9_3   ContentCategory = "IAB9-3"   // Beadwork
	ContentCategoryIAB9_4   ContentCategory = "IAB9-4"   // Birdwatching
	ContentCategoryIAB9_5   ContentCategory = "IAB9-5"   // Board Games/Puzzles
	ContentCategoryIAB9_6   ContentCategory = "IAB9-6"   // Candle & Soap Making
	ContentCategoryIAB9_7   ContentCategory = "IAB9-7"   // Card Games
	ContentCategoryIAB9_8   ContentCategory = "IAB9-8"   // Chess
	ContentCategoryIAB9_9   ContentCategory = "IAB9-9"   // Cigars
	ContentCategoryIAB9_10  ContentCategory = "IAB9-10"  // Collecting
	ContentCategoryIAB9_11  ContentCategory = "IAB9-11"  // Comic Books
	ContentCategoryIAB9_12  ContentCategory = "IAB9-12"  // Drawing/Sketching
	ContentCategoryIAB9_13  ContentCategory = "IAB9-13"  // Freelance Writing
	ContentCategoryIAB9_14  ContentCategory = "IAB9-14"  // Geneaology
	ContentCategoryIAB9_15  ContentCategory = "IAB9-15"  // Getting Published
	ContentCategoryIAB9_16  ContentCategory = "IAB9-16"  // Guitar
	ContentCategoryIAB9_17  ContentCategory = "IAB9-17"  // Home Recording
	ContentCategoryIAB9_18  ContentCategory = "IAB9-18"  // Investors & Patents
	ContentCategoryIAB9_19  ContentCategory = "IAB9-19"  // Jewelry Making
	ContentCategoryIAB9_20  ContentCategory = "IAB9-20"  // Magic & Illusion
	ContentCategoryIAB9_21  ContentCategory = "IAB9-21"  // Needlework
	ContentCategoryIAB9_22  ContentCategory = "IAB9-22"  // Painting
	ContentCategoryIAB9_23  ContentCategory = "IAB9-23"  // Photography
	ContentCategoryIAB9_24  ContentCategory = "IAB9-24"  // Radio
	ContentCategoryIAB9_25  ContentCategory = "IAB9-25"  // Roleplaying Games
	ContentCategoryIAB9_26  ContentCategory = "IAB9-26"  // Sci-Fi & Fantasy
	ContentCategoryIAB9_27  ContentCategory = "IAB9-27"  // Scrapbooking
	ContentCategoryIAB9_28  ContentCategory = "IAB9-28"  // Screenwriting
	ContentCategoryIAB9_29  ContentCategory = "IAB9-29"  // Stamps & Coins
	ContentCategoryIAB9_30  ContentCategory = "IAB9-30"  // Video & Computer Games
	ContentCategoryIAB9_31  ContentCategory = "IAB9-31"  // Woodworking
	ContentCategoryIAB10    ContentCategory = "IAB10"    // Home & Garden
	ContentCategoryIAB10_1  ContentCategory = "IAB10-1"  // Appliances
	ContentCategoryIAB10_2  ContentCategory = "IAB10-2"  // Entertaining
	ContentCategoryIAB10_3  ContentCategory = "IAB10-3"  // Environmental Safety
	ContentCategoryIAB10_4  ContentCategory = "IAB10-4"  // Gardening
	ContentCategoryIAB10_5  ContentCategory = "IAB10-5"  // Home Repair
	ContentCategoryIAB10_6  ContentCategory = "IAB10-6"  // Home Theater
	ContentCategoryIAB10_7  ContentCategory = "IAB10-7"  // Interior  Decorating
	ContentCategoryIAB10_8  ContentCategory = "IAB10-8"  // Landscaping
	ContentCategoryIAB10_9  ContentCategory = "IAB10-9"  // Remodeling & Construction
	ContentCategoryIAB11    ContentCategory = "IAB11"    // Law, Gov't & Politics
	ContentCategoryIAB11_1  ContentCategory = "IAB11-1"  // Immigration
	ContentCategoryIAB11_2  ContentCategory = "IAB11-2"  // Legal Issues
	ContentCategoryIAB11_3  ContentCategory = "IAB11-3"  // U.S. Government Resources
	ContentCategoryIAB11_4  ContentCategory = "IAB11-4"  // Politics
	ContentCategoryIAB11_5  ContentCategory = "IAB11-5"  // Commentary
	ContentCategoryIAB12    ContentCategory = "IAB12"    // News
	ContentCategoryIAB12_1  ContentCategory = "IAB12-1"  // International News
	ContentCategoryIAB12_2  ContentCategory = "IAB12-2"  // National News
	ContentCategoryIAB12_3  ContentCategory = "IAB12-3"  // Local News
	ContentCategoryIAB13    ContentCategory = "IAB13"    // Personal Finance
	ContentCategoryIAB13_1  ContentCategory = "IAB13-1"  // Beginning Investing
	ContentCategoryIAB13_2  ContentCategory = "IAB13-2"  // Credit/Debt & Loans
	ContentCategoryIAB13_3  ContentCategory = "IAB13-3"  // Financial News
	ContentCategoryIAB13_4  ContentCategory = "IAB13-4"  // Financial Planning
	ContentCategoryIAB13_5  ContentCategory = "IAB13-5"  // Hedge Fund
	ContentCategoryIAB13_6  ContentCategory = "IAB13-6"  // Insurance
	ContentCategoryIAB13_7  ContentCategory = "IAB13-7"  // Investing
	ContentCategoryIAB13_8  ContentCategory = "IAB13-8"  // Mutual Funds
	ContentCategoryIAB13_9  ContentCategory = "IAB13-9"  // Options
	ContentCategoryIAB13_10 ContentCategory = "IAB13-10" // Retirement Planning
	ContentCategoryIAB13_11 ContentCategory = "IAB13-11" // Stocks
	ContentCategoryIAB13_12 ContentCategory = "IAB13-12" // Tax Planning
	ContentCategoryIAB14    ContentCategory = "IAB14"    // Society
	ContentCategoryIAB14_1  ContentCategory = "IAB14-1"  // Dating
	ContentCategoryIAB14_2  ContentCategory = "IAB14-2"  // Divorce Support
	ContentCategoryIAB14_3  ContentCategory = "IAB14-3"  // Gay Life
	ContentCategoryIAB14_4  ContentCategory = "IAB14-4"  // Marriage
	ContentCategoryIAB14_5  ContentCategory = "IAB14-5"  // Senior Living
	ContentCategoryIAB14_6  ContentCategory = "IAB14-6"  // Teens
	ContentCategoryIAB14_7  ContentCategory = "IAB14-7"  // Weddings
	ContentCategoryIAB14_8  ContentCategory = "IAB14-8"  // Ethnic Specific
	ContentCategoryIAB15    ContentCategory = "IAB15"    // Science
	ContentCategoryIAB15_1  ContentCategory = "IAB15-1"  // Astrology
	ContentCategoryIAB15_2  ContentCategory = "IAB15-2"  // Biology
	ContentCategoryIAB15_3  ContentCategory = "IAB15-3"  // Chemistry
	ContentCategoryIAB15_4  ContentCategory = "IAB15-4"  // Geology
	ContentCategoryIAB15_5  ContentCategory = "IAB15-5"  // Paranormal Phenomena
	ContentCategoryIAB15_6  ContentCategory = "IAB15-6"  // Physics
	ContentCategoryIAB15_7  ContentCategory = "IAB15-7"  // Space/Astronomy
	ContentCategoryIAB15_8  ContentCategory = "IAB15-8"  // Geography
	ContentCategoryIAB15_9  ContentCategory = "IAB15-9"  // Botany
	ContentCategoryIAB15_10 ContentCategory = "IAB15-10" // Weather
	ContentCategoryIAB16    ContentCategory = "IAB16"    // Pets
	ContentCategoryIAB16_1  ContentCategory = "IAB16-1"  // Aquariums
	ContentCategoryIAB16_2  ContentCategory = "IAB16-2"  // Birds
	ContentCategoryIAB16_3  ContentCategory = "IAB16-3"  // Cats
	ContentCategoryIAB16_4  ContentCategory = "IAB16-4"  // Dogs
	ContentCategoryIAB16_5  ContentCategory = "IAB16-5"  // Large Animals
	ContentCategoryIAB16_6  ContentCategory = "IAB16-6"  // Reptiles
	ContentCategoryIAB16_7  ContentCategory = "IAB16-7"  // Veterinary Medicine
	ContentCategoryIAB17    ContentCategory = "IAB17"    // Sports
	ContentCategoryIAB17_1  ContentCategory = "IAB17-1"  // Auto Racing
	ContentCategoryIAB17_2  ContentCategory = "IAB17-2"  // Baseball
	ContentCategoryIAB17_3  ContentCategory = "IAB17-3"  // Bicycling
	ContentCategoryIAB17_4  ContentCategory = "IAB17-4"  // Bodybuilding
	ContentCategoryIAB17_5  ContentCategory = "IAB17-5"  // Boxing
	ContentCategoryIAB17_6  ContentCategory = "IAB17-6"  // Canoeing/Kayaking
	ContentCategoryIAB17_7  ContentCategory = "IAB17-7"  // Cheerleading
	ContentCategoryIAB17_8  ContentCategory = "IAB17-8"  // Climbing
	ContentCategoryIAB17_9  ContentCategory = "IAB17-9"  // Cricket
	ContentCategoryIAB17_10 ContentCategory = "IAB17-10" // Figure Skating
	ContentCategoryIAB17_11 ContentCategory = "IAB17-11" // Fly Fishing
	ContentCategoryIAB17_12 ContentCategory = "IAB17-12" // Football
	ContentCategoryIAB17_13 ContentCategory = "IAB17-13" // Freshwater Fishing
	ContentCategoryIAB17_14 ContentCategory = "IAB17-14" // Game & Fish
	ContentCategoryIAB17_15 ContentCategory = "IAB17-15" // Golf
	ContentCategoryIAB17_16 ContentCategory = "IAB17-16" // Horse Racing
	ContentCategoryIAB17_17 ContentCategory = "IAB17-17" // Horses
	ContentCategoryIAB17_18 ContentCategory = "IAB17-18" // Hunting/Shooting
	ContentCategoryIAB17_19 ContentCategory = "IAB17-19" // Inline  Skating
	ContentCategoryIAB17_20 ContentCategory = "IAB17-20" // Martial Arts
	ContentCategoryIAB17_21 ContentCategory = "IAB17-21" // Mountain Biking
	ContentCategoryIAB17_22 ContentCategory = "IAB17-22" // NASCAR Racing
	ContentCategoryIAB17_23 ContentCategory = "IAB17-23" // Olympics
	ContentCategoryIAB17_24 ContentCategory = "IAB17-24" // Paintball
	ContentCategoryIAB17_25 ContentCategory = "IAB17-25" // Power & Motorcycles
	ContentCategoryIAB17_26 ContentCategory = "IAB17-26" // Pro Basketball
	ContentCategoryIAB17_27 ContentCategory = "IAB17-27" // Pro Ice Hockey
	ContentCategoryIAB17_28 ContentCategory = "IAB17-28" // Rodeo
	ContentCategoryIAB17_29 ContentCategory = "IAB17-29" // Rugby
	ContentCategoryIAB17_30 ContentCategory = "IAB17-30" // Running/Jogging
	ContentCategoryIAB17_31 ContentCategory = "IAB17-31" // Sailing
	ContentCategoryIAB17_32 ContentCategory = "IAB17-32" // Saltwater Fishing
	ContentCategoryIAB17_33 ContentCategory = "IAB17-33" // Scuba Diving
	ContentCategoryIAB17_34 ContentCategory = "IAB17-34" // Skateboarding
	ContentCategoryIAB17_35 ContentCategory = "IAB17-35" // Skiing
	ContentCategoryIAB17_36 ContentCategory = "IAB17-36" // Snowboarding
	ContentCategoryIAB17_37 ContentCategory = "IAB17-37" // Surfing/Bodyboarding
	ContentCategoryIAB17_38 ContentCategory = "IAB17-38" // Swimming
	ContentCategoryIAB17_39 ContentCategory = "IAB17-39" // Table Tennis/Ping-Pong
	ContentCategoryIAB17_40 ContentCategory = "IAB17-40" // Tennis
	ContentCategoryIAB17_41 ContentCategory = "IAB17-41" // Volleyball
	ContentCategoryIAB17_42 ContentCategory = "IAB17-42" // Walking
	ContentCategoryIAB17_43 ContentCategory = "IAB17-43" // Waterski/Wakeboard
	ContentCategoryIAB17_44 ContentCategory = "IAB17-44" // World Soccer
	ContentCategoryIAB18    ContentCategory = "IAB18"    // Style & Fashion
	ContentCategoryIAB18_1  ContentCategory = "IAB18-1"  // Beauty
	ContentCategoryIAB18_2  ContentCategory = "IAB18-2"  // Body Art
	ContentCategoryIAB18_3  ContentCategory = "IAB18-3"  // Fashion
	ContentCategoryIAB18_4  ContentCategory = "IAB18-4"  // Jewelry
	ContentCategoryIAB18_5  ContentCategory = "IAB18-5"  // Clothing
	ContentCategoryIAB18_6  ContentCategory = "IAB18-6"  // Accessories
	ContentCategoryIAB19    ContentCategory = "IAB19"    // Technology & Computing
	ContentCategoryIAB19_1  ContentCategory = "IAB19-1"  // 3-D Graphics
	ContentCategoryIAB19_2  ContentCategory = "IAB19-2"  // Animation
	ContentCategoryIAB19_3  ContentCategory = "IAB19-3"  // Antivirus Software
	ContentCategoryIAB19_4  ContentCategory = "IAB19-4"  // C/C++
	ContentCategoryIAB19_5  ContentCategory = "IAB19-5"  // Cameras & Camcorders
	ContentCategoryIAB19_6  ContentCategory = "IAB19-6"  // Cell  Phones
	ContentCategoryIAB19_7  ContentCategory = "IAB19-7"  // Computer Certification
	ContentCategoryIAB19_8  ContentCategory = "IAB19-8"  // Computer Networking
	ContentCategoryIAB19_9  ContentCategory = "IAB19-9"  // Computer Peripherals
	ContentCategoryIAB19_10 ContentCategory = "IAB19-10" // Computer Reviews
	ContentCategoryIAB19_11 ContentCategory = "IAB19-11" // Data Centers
	ContentCategoryIAB19_12 ContentCategory = "IAB19-12" // Databases
	ContentCategoryIAB19_13 ContentCategory = "IAB19-13" // Desktop Publishing
	ContentCategoryIAB19_14 ContentCategory = "IAB19-14" // Desktop Video
	ContentCategoryIAB19_15 ContentCategory = "IAB19-15" // Email
	ContentCategoryIAB19_16 ContentCategory = "IAB19-16" // Graphics Software
	ContentCategoryIAB19_17 ContentCategory = "IAB19-17" // Home Video/DVD
	ContentCategoryIAB19_18 ContentCategory = "IAB19-18" // Internet Technology
	ContentCategoryIAB19_19 ContentCategory = "IAB19-19" // Java
	ContentCategoryIAB19_20 ContentCategory = "IAB19-20" // Javascript
	ContentCategoryIAB19_21 ContentCategory = "IAB19-21" // Mac Support
	ContentCategoryIAB19_22 ContentCategory = "IAB19-22" // MP3/MIDI
	ContentCategoryIAB19_23 ContentCategory = "IAB19-23" // Net Conferencing
	ContentCategoryIAB19_24 ContentCategory = "IAB19-24" // Net for Beginners
	ContentCategoryIAB19_25 ContentCategory = "IAB19-25" // Network Security
	ContentCategoryIAB19_26 ContentCategory = "IAB19-26" // Palmtops/PDAs
	ContentCategoryIAB19_27 ContentCategory = "IAB19-27" // PC Support
	ContentCategoryIAB19_28 ContentCategory = "IAB19-28" // Portable
	ContentCategoryIAB19_29 ContentCategory = "IAB19-29" // Entertainment
	ContentCategoryIAB19_30 ContentCategory = "IAB19-30" // Shareware/Freeware
	ContentCategoryIAB19_31 ContentCategory = "IAB19-31" // Unix
	ContentCategoryIAB19_32 ContentCategory = "IAB19-32" // Visual Basic
	ContentCategoryIAB19_33 ContentCategory = "IAB19-33" // Web Clip Art
	ContentCategoryIAB19_34 ContentCategory = "IAB19-34" // Web Design/HTML
	ContentCategoryIAB19_35 ContentCategory = "IAB19-35" // Web Search
	ContentCategoryIAB19_36 ContentCategory = "IAB19-36" // Windows
	ContentCategoryIAB20    ContentCategory = "IAB20"    // Travel
	ContentCategoryIAB20_1  ContentCategory = "IAB20-1"  // Adventure Travel
	ContentCategoryIAB20_2  ContentCategory = "IAB20-2"  // Africa
	ContentCategoryIAB20_3  ContentCategory = "IAB20-3"  // Air Travel
	ContentCategoryIAB20_4  ContentCategory = "IAB20-4"  // Australia & New Zealand
	ContentCategoryIAB20_5  ContentCategory = "IAB20-5"  // Bed & Breakfasts
	ContentCategoryIAB20_6  ContentCategory = "IAB20-6"  // Budget Travel
	ContentCategoryIAB20_7  ContentCategory = "IAB20-7"  // Business Travel
	ContentCategoryIAB20_8  ContentCategory = "IAB20-8"  // By US Locale
	ContentCategoryIAB20_9  ContentCategory = "IAB20-9"  // Camping
	ContentCategoryIAB20_10 ContentCategory = "IAB20-10" // Canada
	ContentCategoryIAB20_11 ContentCategory = "IAB20-11" // Caribbean
	ContentCategoryIAB20_12 ContentCategory = "IAB20-12" // Cruises
	ContentCategoryIAB20_13 ContentCategory = "IAB20-13" // Eastern  Europe
	ContentCategoryIAB20_14 ContentCategory = "IAB20-14" // Europe
	ContentCategoryIAB20_15 ContentCategory = "IAB20-15" // France
	ContentCategoryIAB20_16 ContentCategory = "IAB20-16" // Greece
	ContentCategoryIAB20_17 ContentCategory = "IAB20-17" // Honeymoons/Getaways
	ContentCategoryIAB20_18 ContentCategory = "IAB20-18" // Hotels
	ContentCategoryIAB20_19 ContentCategory = "IAB20-19" // Italy
	ContentCategoryIAB20_20 ContentCategory = "IAB20-20" // Japan
	ContentCategoryIAB20_21 ContentCategory = "IAB20-21" // Mexico & Central America
	ContentCategoryIAB20_22 ContentCategory = "IAB20-22" // National Parks
	ContentCategoryIAB20_23 ContentCategory = "IAB20-23" // South America
	ContentCategoryIAB20_24 ContentCategory = "IAB20-24" // Spas
	ContentCategoryIAB20_25 ContentCategory = "IAB20-25" // Theme Parks
	ContentCategoryIAB20_26 ContentCategory = "IAB20-26" // Traveling with Kids
	ContentCategoryIAB20_27 ContentCategory = "IAB20-27" // United Kingdom
	ContentCategoryIAB21    ContentCategory = "IAB21"    // Real Estate
	ContentCategoryIAB21_1  ContentCategory = "IAB21-1"  // Apartments
	ContentCategoryIAB21_2  ContentCategory = "IAB21-2"  // Architects
	ContentCategoryIAB21_3  ContentCategory = "IAB21-3"  // Buying/Selling Homes
	ContentCategoryIAB22    ContentCategory = "IAB22"    // Shopping
	ContentCategoryIAB22_1  ContentCategory = "IAB22-1"  // Contests & Freebies
	ContentCategoryIAB22_2  ContentCategory = "IAB22-2"  // Couponing
	ContentCategoryIAB22_3  ContentCategory = "IAB22-3"  // Comparison
	ContentCategoryIAB22_4  ContentCategory = "IAB22-4"  // Engines
	ContentCategoryIAB23    ContentCategory = "IAB23"    // Religion & Spirituality
	ContentCategoryIAB23_1  ContentCategory = "IAB23-1"  // Alternative Religions
	ContentCategoryIAB23_2  ContentCategory = "IAB23-2"  // Atheism/Agnosticism
	ContentCategoryIAB23_3  ContentCategory = "IAB23-3"  // Buddhism
	ContentCategoryIAB23_4  ContentCategory = "IAB23-4"  // Catholicism
	ContentCategoryIAB23_5  ContentCategory = "IAB23-5"  // Christianity
	ContentCategoryIAB23_6  ContentCategory = "IAB23-6"  // Hinduism
	ContentCategoryIAB23_7  ContentCategory = "IAB23-7"  // Islam
	ContentCategoryIAB23_8  ContentCategory = "IAB23-8"  // Judaism
	ContentCategoryIAB23_9  ContentCategory = "IAB23-9"  // Latter-Day Saints
	ContentCategoryIAB23_10 ContentCategory = "IAB23-10" // Paga/Wiccan
	ContentCategoryIAB24    ContentCategory = "IAB24"    // Uncategorized
	ContentCategoryIAB25    ContentCategory = "IAB25"    // Non-Standard Content
	ContentCategoryIAB25_1  ContentCategory = "IAB25-1"  // Unmoderated UGC
	ContentCategoryIAB25_2  ContentCategory = "IAB25-2"  // Extreme Graphic/Explicit Violence
	ContentCategoryIAB25_3  ContentCategory = "IAB25-3"  // Pornography
	ContentCategoryIAB25_4  ContentCategory = "IAB25-4"  // Profane Content
	ContentCategoryIAB25_5  ContentCategory = "IAB25-5"  // Hate Content
	ContentCategoryIAB25_6  ContentCategory = "IAB25-6"  // Under Construction
	ContentCategoryIAB25_7  ContentCategory = "IAB25-7"  // Incentivized
	ContentCategoryIAB26    ContentCategory = "IAB26"    // Illegal Content
	ContentCategoryIAB26_1  ContentCategory = "IAB26-1"  // Illegal Content
	ContentCategoryIAB26_2  ContentCategory = "IAB26-2"  // Warez
	ContentCategoryIAB26_3  ContentCategory = "IAB26-3"  // Spyware/Malware
	ContentCategoryIAB26_4  ContentCategory = "IAB26-4"  // Copyright Infringement
)

// contentCategoryNames maps each IAB code to its human-readable label.
var contentCategoryNames = map[ContentCategory]string{
	ContentCategoryIAB1:     "Arts & Entertainment",
	ContentCategoryIAB1_1:   "Books & Literature",
	ContentCategoryIAB1_2:   "Celebrity Fan/Gossip",
	ContentCategoryIAB1_3:   "Fine Art",
	ContentCategoryIAB1_4:   "Humor",
	ContentCategoryIAB1_5:   "Movies",
	ContentCategoryIAB1_6:   "Music",
	ContentCategoryIAB1_7:   "Television",
	ContentCategoryIAB2:     "Automotive",
	ContentCategoryIAB2_1:   "Auto Parts",
	ContentCategoryIAB2_2:   "Auto Repair",
	ContentCategoryIAB2_3:   "Buying/Selling Cars",
	ContentCategoryIAB2_4:   "Car Culture",
	ContentCategoryIAB2_5:   "Certified Pre-Owned",
	ContentCategoryIAB2_6:   "Convertible",
	ContentCategoryIAB2_7:   "Coupe",
	ContentCategoryIAB2_8:   "Crossover",
	ContentCategoryIAB2_9:   "Diesel",
	ContentCategoryIAB2_10:  "Electric Vehicle",
	ContentCategoryIAB2_11:  "Hatchback",
	ContentCategoryIAB2_12:  "Hybrid",
	ContentCategoryIAB2_13:  "Luxury",
	ContentCategoryIAB2_14:  "MiniVan",
	ContentCategoryIAB2_15:  "Motorcycles",
	ContentCategoryIAB2_16:  "Off-Road Vehicles",
	ContentCategoryIAB2_17:  "Performance Vehicles",
	ContentCategoryIAB2_18:  "Pickup",
	ContentCategoryIAB2_19:  "Road-Side Assistance",
	ContentCategoryIAB2_20:  "Sedan",
	ContentCategoryIAB2_21:  "Trucks & Accessories",
	ContentCategoryIAB2_22:  "Vintage Cars",
	ContentCategoryIAB2_23:  "Wagon",
	ContentCategoryIAB3:     "Business",
	ContentCategoryIAB3_1:   "Advertising",
	ContentCategoryIAB3_2:   "Agriculture",
	ContentCategoryIAB3_3:   "Biotech/Biomedical",
	ContentCategoryIAB3_4:   "Business Software",
	ContentCategoryIAB3_5:   "Construction",
	ContentCategoryIAB3_6:   "Forestry",
	ContentCategoryIAB3_7:   "Government",
	ContentCategoryIAB3_8:   "Green Solutions",
	ContentCategoryIAB3_9:   "Human Resources",
	ContentCategoryIAB3_10:  "Logistics",
	ContentCategoryIAB3_11:  "Marketing",
	ContentCategoryIAB3_12:  "Metals",
	ContentCategoryIAB4:     "Careers",
	ContentCategoryIAB4_1:   "Career Planning",
	ContentCategoryIAB4_2:   "College",
	ContentCategoryIAB4_3:   "Financial  Aid",
	ContentCategoryIAB4_4:   "Job Fairs",
	ContentCategoryIAB4_5:   "Job Search",
	ContentCategoryIAB4_6:   "Resume Writing/Advice",
	ContentCategoryIAB4_7:   "Nursing",
	ContentCategoryIAB4_8:   "Scholarships",
	ContentCategoryIAB4_9:   "Telecommuting",
	ContentCategoryIAB4_10:  "U.S. Military",
	ContentCategoryIAB4_11:  "Career Advice",
	ContentCategoryIAB5:     "Education",
	ContentCategoryIAB5_1:   "7-12 Education",
	ContentCategoryIAB5_2:   "Adult Education",
	ContentCategoryIAB5_3:   "Art History",
	ContentCategoryIAB5_4:   "College Administration",
	ContentCategoryIAB5_5:   "College Life",
	ContentCategoryIAB5_6:   "Distance Learning",
	ContentCategoryIAB5_7:   "English as a 2nd Language",
	ContentCategoryIAB5_8:   "Language Learning",
	ContentCategoryIAB5_9:   "Graduate School",
	ContentCategoryIAB5_10:  "Homeschooling",
	ContentCategoryIAB5_11:  "Homework/Study Tips",
	ContentCategoryIAB5_12:  "K-6 Educators",
	ContentCategoryIAB5_13:  "Private School",
	ContentCategoryIAB5_14:  "Special Education",
	ContentCategoryIAB5_15:  "Studying Business",
	ContentCategoryIAB6:     "Family & Parenting",
	ContentCategoryIAB6_1:   "Adoption",
	ContentCategoryIAB6_2:   "Babies & Toddlers",
	ContentCategoryIAB6_3:   "Daycare/Pre School",
	ContentCategoryIAB6_4:   "Family Internet",
	ContentCategoryIAB6_5:   "Parenting - K-6 Kids",
	ContentCategoryIAB6_6:   "Parenting teens",
	ContentCategoryIAB6_7:   "Pregnancy",
	ContentCategoryIAB6_8:   "Special Needs Kids",
	ContentCategoryIAB6_9:   "Eldercare",
	ContentCategoryIAB7:     "Health & Fitness",
	ContentCategoryIAB7_1:   "Exercise",
	ContentCategoryIAB7_2:   "A.D.D.",
	ContentCategoryIAB7_3:   "AIDS/HIV",
	ContentCategoryIAB7_4:   "Allergies",
	ContentCategoryIAB7_5:   "Alternative Medicine",
	ContentCategoryIAB7_6:   "Arthritis",
	ContentCategoryIAB7_7:   "Asthma",
	ContentCategoryIAB7_8:   "Autism/PDD",
	ContentCategoryIAB7_9:   "Bipolar Disorder",
	ContentCategoryIAB7_10:  "Brain Tumor",
	ContentCategoryIAB7_11:  "Cancer",
	ContentCategoryIAB7_12:  "Cholesterol",
	ContentCategoryIAB7_13:  "Chronic Fatigue Syndrome",
	ContentCategoryIAB7_14:  "Chronic Pain",
	ContentCategoryIAB7_15:  "Cold & Flu",
	ContentCategoryIAB7_16:  "Deafness",
	ContentCategoryIAB7_17:  "Dental Care",
	ContentCategoryIAB7_18:  "Depression",
	ContentCategoryIAB7_19:  "Dermatology",
	ContentCategoryIAB7_20:  "Diabetes",
	ContentCategoryIAB7_21:  "Epilepsy",
	ContentCategoryIAB7_22:  "GERD/Acid Reflux",
	ContentCategoryIAB7_23:  "Headaches/Migraines",
	ContentCategoryIAB7_24:  "Heart Disease",
	ContentCategoryIAB7_25:  "Herbs for Health",
	ContentCategoryIAB7_26:  "Holistic Healing",
	ContentCategoryIAB7_27:  "IBS/Crohn's Disease",
	ContentCategoryIAB7_28:  "Incest/Abuse Support",
	ContentCategoryIAB7_29:  "Incontinence",
	ContentCategoryIAB7_30:  "Infertility",
	ContentCategoryIAB7_31:  "Men's Health",
	ContentCategoryIAB7_32:  "Nutrition",
	ContentCategoryIAB7_33:  "Orthopedics",
	ContentCategoryIAB7_34:  "Panic/Anxiety Disorders",
	ContentCategoryIAB7_35:  "Pediatrics",
	ContentCategoryIAB7_36:  "Physical Therapy",
	ContentCategoryIAB7_37:  "Psychology/Psychiatry",
	ContentCategoryIAB7_38:  "Senor Health",
	ContentCategoryIAB7_39:  "Sexuality",
	ContentCategoryIAB7_40:  "Sleep Disorders",
	ContentCategoryIAB7_41:  "Smoking Cessation",
	ContentCategoryIAB7_42:  "Substance Abuse",
	ContentCategoryIAB7_43:  "Thyroid Disease",
	ContentCategoryIAB7_44:  "Weight Loss",
	ContentCategoryIAB7_45:  "Women's Health",
	ContentCategoryIAB8:     "Food & Drink",
	ContentCategoryIAB8_1:   "American Cuisine",
	ContentCategoryIAB8_2:   "Barbecues & Grilling",
	ContentCategoryIAB8_3:   "Cajun/Creole",
	ContentCategoryIAB8_4:   "Chinese Cuisine",
	ContentCategoryIAB8_5:   "Cocktails/Beer",
	ContentCategoryIAB8_6:   "Coffee/Tea",
	ContentCategoryIAB8_7:   "Cuisine-Specific",
	ContentCategoryIAB8_8:   "Desserts & Baking",
	ContentCategoryIAB8_9:   "Dining Out",
	ContentCategoryIAB8_10:  "Food Allergies",
	ContentCategoryIAB8_11:  "French Cuisine",
	ContentCategoryIAB8_12:  "Health/Lowfat Cooking",
	ContentCategoryIAB8_13:  "Italian Cuisine",
	ContentCategoryIAB8_14:  "Japanese Cuisine",
	ContentCategoryIAB8_15:  "Mexican Cuisine",
	ContentCategoryIAB8_16:  "Vegan",
	ContentCategoryIAB8_17:  "Vegetarian",
	ContentCategoryIAB8_18:  "Wine",
	ContentCategoryIAB9:     "Hobbies & Interests",
	ContentCategoryIAB9_1:   "Art/Technology",
	ContentCategoryIAB9_2:   "Arts & Crafts",
	ContentCategoryIAB9_3:   "Beadwork",
	ContentCategoryIAB9_4:   "Birdwatching",
	ContentCategoryIAB9_5:   "Board Games/Puzzles",
	ContentCategoryIAB9_6:   "Candle & Soap Making",
	ContentCategoryIAB9_7:   "Card Games",
	ContentCategoryIAB9_8:   "Chess",
	ContentCategoryIAB9_9:   "Cigars",
	ContentCategoryIAB9_10:  "Collecting",
	ContentCategoryIAB9_11:  "Comic Books",
	ContentCategoryIAB9_12:  "Drawing/Sketching",
	ContentCategoryIAB9_13:  "Freelance Writing",
	ContentCategoryIAB9_14:  "Geneaology",
	ContentCategoryIAB9_15:  "Getting Published",
	ContentCategoryIAB9_16:  "Guitar",
	ContentCategoryIAB9_17:  "Home Recording",
	ContentCategoryIAB9_18:  "Investors & Patents",
	ContentCategoryIAB9_19:  "Jewelry Making",
	ContentCategoryIAB9_20:  "Magic & Illusion",
	ContentCategoryIAB9_21:  "Needlework",
	ContentCategoryIAB9_22:  "Painting",
	ContentCategoryIAB9_23:  "Photography",
	ContentCategoryIAB9_24:  "Radio",
	ContentCategoryIAB9_25:  "Roleplaying Games",
	ContentCategoryIAB9_26:  "Sci-Fi & Fantasy",
	ContentCategoryIAB9_27:  "Scrapbooking",
	ContentCategoryIAB9_28:  "Screenwriting",
	ContentCategoryIAB9_29:  "Stamps & Coins",
	ContentCategoryIAB9_30:  "Video & Computer Games",
	ContentCategoryIAB9_31:  "Woodworking",
	ContentCategoryIAB10:    "Home & Garden",
	ContentCategoryIAB10_1:  "Appliances",
	ContentCategoryIAB10_2:  "Entertaining",
	ContentCategoryIAB10_3:  "Environmental Safety",
	ContentCategoryIAB10_4:  "Gardening",
	ContentCategoryIAB10_5:  "Home Repair",
	ContentCategoryIAB10_6:  "Home Theater",
	ContentCategoryIAB10_7:  "Interior  Decorating",
	ContentCategoryIAB10_8:  "Landscaping",
	ContentCategoryIAB10_9:  "Remodeling & Construction",
	ContentCategoryIAB11:    "Law, Gov't & Politics",
	ContentCategoryIAB11_1:  "Immigration",
	ContentCategoryIAB11_2:  "Legal Issues",
	ContentCategoryIAB11_3:  "U.S. Government Resources",
	ContentCategoryIAB11_4:  "Politics",
	ContentCategoryIAB11_5:  "Commentary",
	ContentCategoryIAB12:    "News",
	ContentCategoryIAB12_1:  "International News",
	ContentCategoryIAB12_2:  "National News",
	ContentCategoryIAB12_3:  "Local News",
	ContentCategoryIAB13:    "Personal Finance",
	ContentCategoryIAB13_1:  "Beginning Investing",
	ContentCategoryIAB13_2:  "Credit/Debt & Loans",
	ContentCategoryIAB13_3:  "Financial News",
	ContentCategoryIAB13_4:  "Financial Planning",
	ContentCategoryIAB13_5:  "Hedge Fund",
	ContentCategoryIAB13_6:  "Insurance",
	ContentCategoryIAB13_7:  "Investing",
	ContentCategoryIAB13_8:  "Mutual Funds",
	ContentCategoryIAB13_9:  "Options",
	ContentCategoryIAB13_10: "Retirement Planning",
	ContentCategoryIAB13_11: "Stocks",
	ContentCategoryIAB13_12: "Tax Planning",
	ContentCategoryIAB14:    "Society",
	ContentCategoryIAB14_1:  "Dating",
	ContentCategoryIAB14_2:  "Divorce Support",
	ContentCategoryIAB14_3:  "Gay Life",
	ContentCategoryIAB14_4:  "Marriage",
	ContentCategoryIAB14_5:  "Senior Living",
	ContentCategoryIAB14_6:  "Teens",
	ContentCategoryIAB14_7:  "Weddings",
	ContentCategoryIAB14_8:  "Ethnic Specific",
	ContentCategoryIAB15:    "Science",
	ContentCategoryIAB15_1:  "Astrology",
	ContentCategoryIAB15_2:  "Biology",
	ContentCategoryIAB15_3:  "Chemistry",
	ContentCategoryIAB15_4:  "Geology",
	ContentCategoryIAB15_5:  "Paranormal Phenomena",
	ContentCategoryIAB15_6:  "Physics",
	ContentCategoryIAB15_7:  "Space/Astronomy",
	ContentCategoryIAB15_8:  "Geography",
	ContentCategoryIAB15_9:  "Botany",
	ContentCategoryIAB15_10: "Weather",
	ContentCategoryIAB16:    "Pets",
	ContentCategoryIAB16_1:  "Aquariums",
	ContentCategoryIAB16_2:  "Birds",
	ContentCategoryIAB16_3:  "Cats",
	ContentCategoryIAB16_4:  "Dogs",
	ContentCategoryIAB16_5:  "Large Animals",
	ContentCategoryIAB16_6:  "Reptiles",
	ContentCategoryIAB16_7:  "Veterinary Medicine",
	ContentCategoryIAB17:    "Sports",
	ContentCategoryIAB17_1:  "Auto Racing",
	ContentCategoryIAB17_2:  "Baseball",
	ContentCategoryIAB17_3:  "Bicycling",
	ContentCategoryIAB17_4:  "Bodybuilding",
	ContentCategoryIAB17_5:  "Boxing",
	ContentCategoryIAB17_6:  "Canoeing/Kayaking",
	ContentCategoryIAB17_7:  "Cheerleading",
	ContentCategoryIAB17_8:  "Climbing",
	ContentCategoryIAB17_9:  "Cricket",
	ContentCategoryIAB17_10: "Figure Skating",
	ContentCategoryIAB17_11: "Fly Fishing",
	ContentCategoryIAB17_12: "Football",
	ContentCategoryIAB17_13: "Freshwater Fishing",
	ContentCategoryIAB17_14: "Game & Fish",
	ContentCategoryIAB17_15: "Golf",
	ContentCategoryIAB17_16: "Horse Racing",
	ContentCategoryIAB17_17: "Horses",
	ContentCategoryIAB17_18: "Hunting/Shooting",
	ContentCategoryIAB17_19: "Inline  Skating",
	ContentCategoryIAB17_20: "Martial Arts",
	ContentCategoryIAB17_21: "Mountain Biking",
	ContentCategoryIAB17_22: "NASCAR Racing",
	ContentCategoryIAB17_23: "Olympics",
	ContentCategoryIAB17_24: "Paintball",
	ContentCategoryIAB17_25: "Power & Motorcycles",
	ContentCategoryIAB17_26: "Pro Basketball",
	ContentCategoryIAB17_27: "Pro Ice Hockey",
	ContentCategoryIAB17_28: "Rodeo",
	ContentCategoryIAB17_29: "Rugby",
	ContentCategoryIAB17_30: "Running/Jogging",
	ContentCategoryIAB17_31: "Sailing",
	ContentCategoryIAB17_32: "Saltwater Fishing",
	ContentCategoryIAB17_33: "Scuba Diving",
	ContentCategoryIAB17_34: "Skateboarding",
	ContentCategoryIAB17_35: "Skiing",
	ContentCategoryIAB17_36: "Snowboarding",
	ContentCategoryIAB17_37: "Surfing/Bodyboarding",
	ContentCategoryIAB17_38: "Swimming",
	ContentCategoryIAB17_39: "Table Tennis/Ping-Pong",
	ContentCategoryIAB17_40: "Tennis",
	ContentCategoryIAB17_41: "Volleyball",
	ContentCategoryIAB17_42: "Walking",
	ContentCategoryIAB17_43: "Waterski/Wakeboard",
	ContentCategoryIAB17_44: "World Soccer",
	ContentCategoryIAB18:    "Style & Fashion",
	ContentCategoryIAB18_1:  "Beauty",
	ContentCategoryIAB18_2:  "Body Art",
	ContentCategoryIAB18_3:  "Fashion",
	ContentCategoryIAB18_4:  "Jewelry",
	ContentCategoryIAB18_5:  "Clothing",
	ContentCategoryIAB18_6:  "Accessories",
	ContentCategoryIAB19:    "Technology & Computing",
	ContentCategoryIAB19_1:  "3-D Graphics",
	ContentCategoryIAB19_2:  "Animation",
	ContentCategoryIAB19_3:  "Antivirus Software",
	ContentCategoryIAB19_4:  "C/C++",
	ContentCategoryIAB19_5:  "Cameras & Camcorders",
	ContentCategoryIAB19_6:  "Cell  Phones",
	ContentCategoryIAB19_7:  "Computer Certification",
	ContentCategoryIAB19_8:  "Computer Networking",
	ContentCategoryIAB19_9:  "Computer Peripherals",
	ContentCategoryIAB19_10: "Computer Reviews",
	ContentCategoryIAB19_11: "Data Centers",
	ContentCategoryIAB19_12: "Databases",
	ContentCategoryIAB19_13: "Desktop Publishing",
	ContentCategoryIAB19_14: "Desktop Video",
	ContentCategoryIAB19_15: "Email",
	ContentCategoryIAB19_16: "Graphics Software",
	ContentCategoryIAB19_17: "Home Video/DVD",
	ContentCategoryIAB19_18: "Internet Technology",
	ContentCategoryIAB19_19: "Java",
	ContentCategoryIAB19_20: "Javascript",
	ContentCategoryIAB19_21: "Mac Support",
	ContentCategoryIAB19_22: "MP3/MIDI",
	ContentCategoryIAB19_23: "Net Conferencing",
	ContentCategoryIAB19_24: "Net for Beginners",
	ContentCategoryIAB19_25: "Network Security",
	ContentCategoryIAB19_26: "Palmtops/PDAs",
	ContentCategoryIAB19_27: "PC Support",
	ContentCategoryIAB19_28: "Portable",
	ContentCategoryIAB19_29: "Entertainment",
	ContentCategoryIAB19_30: "Shareware/Freeware",
	ContentCategoryIAB19_31: "Unix",
	ContentCategoryIAB19_32: "Visual Basic",
	ContentCategoryIAB19_33: "Web Clip Art",
	ContentCategoryIAB19_34: "Web Design/HTML",
	ContentCategoryIAB19_35: "Web Search",
	ContentCategoryIAB19_36: "Windows",
	ContentCategoryIAB20:    "Travel",
	ContentCategoryIAB20_1:  "Adventure Travel",
	ContentCategoryIAB20_2:  "Africa",
	ContentCategoryIAB20_3:  "Air Travel",
	ContentCategoryIAB20_4:  "Australia & New Zealand",
	ContentCategoryIAB20_5:  "Bed & Breakfasts",
	ContentCategoryIAB20_6:  "Budget Travel",
	ContentCategoryIAB20_7:  "Business Travel",
	ContentCategoryIAB20_8:  "By US Locale",
	ContentCategoryIAB20_9:  "Camping",
	ContentCategoryIAB20_10: "Canada",
	ContentCategoryIAB20_11: "Caribbean",
	ContentCategoryIAB20_12: "Cruises",
	ContentCategoryIAB20_13: "Eastern  Europe",
	ContentCategoryIAB20_14: "Europe",
	ContentCategoryIAB20_15: "France",
	ContentCategoryIAB20_16: "Greece",
	ContentCategoryIAB20_17: "Honeymoons/Getaways",
	ContentCategoryIAB20_18: "Hotels",
	ContentCategoryIAB20_19: "Italy",
	ContentCategoryIAB20_20: "Japan",
	ContentCategoryIAB20_21: "Mexico & Central America",
	ContentCategoryIAB20_22: "National Parks",
	ContentCategoryIAB20_23: "South America",
	ContentCategoryIAB20_24: "Spas",
	ContentCategoryIAB20_25: "Theme Parks",
	ContentCategoryIAB20_26: "Traveling with Kids",
	ContentCategoryIAB20_27: "United Kingdom",
	ContentCategoryIAB21:    "Real Estate",
	ContentCategoryIAB21_1:  "Apartments",
	ContentCategoryIAB21_2:  "Architects",
	ContentCategoryIAB21_3:  "Buying/Selling Homes",
	ContentCategoryIAB22:    "Shopping",
	ContentCategoryIAB22_1:  "Contests & Freebies",
	ContentCategoryIAB22_2:  "Couponing",
	ContentCategoryIAB22_3:  "Comparison",
	ContentCategoryIAB22_4:  "Engines",
	ContentCategoryIAB23:    "Religion & Spirituality",
	ContentCategoryIAB23_1:  "Alternative Religions",
	ContentCategoryIAB23_2:  "Atheism/Agnosticism",
	ContentCategoryIAB23_3:  "Buddhism",
	ContentCategoryIAB23_4:  "Catholicism",
	ContentCategoryIAB23_5:  "Christianity",
	ContentCategoryIAB23_6:  "Hinduism",
	ContentCategoryIAB23_7:  "Islam",
	ContentCategoryIAB23_8:  "Judaism",
	ContentCategoryIAB23_9:  "Latter-Day Saints",
	ContentCategoryIAB23_10: "Paga/Wiccan",
	ContentCategoryIAB24:    "Uncategorized",
	ContentCategoryIAB25:    "Non-Standard Content",
	ContentCategoryIAB25_1:  "Unmoderated UGC",
	ContentCategoryIAB25_2:  "Extreme Graphic/Explicit Violence",
	ContentCategoryIAB25_3:  "Pornography",
	ContentCategoryIAB25_4:  "Profane Content",
	ContentCategoryIAB25_5:  "Hate Content",
	ContentCategoryIAB25_6:  "Under Construction",
	ContentCategoryIAB25_7:  "Incentivized",
	ContentCategoryIAB26:    "Illegal Content",
	ContentCategoryIAB26_1:  "Illegal Content",
	ContentCategoryIAB26_2:  "Warez",
	ContentCategoryIAB26_3:  "Spyware/Malware",
	ContentCategoryIAB26_4:  "Copyright Infringement",
}

// Name returns the human-readable label of the category, or "" if c is
// not a defined IAB code.
func (c ContentCategory) Name() string {
	return contentCategoryNames[c]
}

// UnmarshalJSON implements json.Unmarshaler, rejecting codes outside the
// published taxonomy.
func (c *ContentCategory) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(bytes.TrimSpace(data)))
	if err != nil {
		return fmt.Errorf("openrtb2: cannot decode %q as content category: %w", data, err)
	}
	if cat := ContentCategory(s); cat.Name() != "" {
		*c = cat
		return nil
	}
	return fmt.Errorf("openrtb2: unknown content category %q", s)
}
